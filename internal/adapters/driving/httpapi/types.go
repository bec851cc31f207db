package httpapi

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/custodia-labs/omdiag/internal/core/domain"
)

// levelValue accepts a level as a JSON number (3) or string ("3",
// "forward thinking", "3 - Forward Thinking").
type levelValue domain.Level

// UnmarshalJSON implements json.Unmarshaler.
func (l *levelValue) UnmarshalJSON(data []byte) error {
	var raw string
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		raw = strconv.Itoa(n)
	} else if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: level must be a number or label", domain.ErrInvalidInput)
	}

	level, err := domain.ParseLevel(raw)
	if err != nil {
		return err
	}
	*l = levelValue(level)
	return nil
}

// assessmentRequest is the body of the stateless score and report endpoints.
type assessmentRequest struct {
	Levels map[string]levelValue `json:"levels"`
}

// assessment converts the request into a complete assessment.
func (req assessmentRequest) assessment() (*domain.Assessment, error) {
	answers := make(map[string]domain.Level, len(req.Levels))
	for key, level := range req.Levels {
		answers[key] = domain.Level(level)
	}
	a, err := domain.ParseAnswers(answers)
	if err != nil {
		return nil, err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// answerRequest is the body of PUT /api/sessions/{id}/answers/{dimension}.
type answerRequest struct {
	Level levelValue `json:"level"`
}

// summaryResponse is an on-screen summary.
type summaryResponse struct {
	Average          float64       `json:"average"`
	FormattedAverage string        `json:"formatted_average"`
	Label            string        `json:"label"`
	LabelName        string        `json:"label_name"`
	Rows             []rowResponse `json:"rows"`
}

type rowResponse struct {
	Dimension      string `json:"dimension"`
	Name           string `json:"name"`
	Heading        string `json:"heading"`
	Level          int    `json:"level"`
	Label          string `json:"label"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
	TopExemplar    string `json:"top_exemplar"`
	SupportNote    string `json:"support_note"`
}

func newSummaryResponse(summary *domain.Summary) summaryResponse {
	out := summaryResponse{
		Average:          summary.Score.Average,
		FormattedAverage: summary.Score.FormattedAverage(),
		Label:            summary.Score.Label.String(),
		LabelName:        summary.Score.Label.DisplayName(),
		Rows:             make([]rowResponse, len(summary.Rows)),
	}
	for i, row := range summary.Rows {
		out.Rows[i] = rowResponse{
			Dimension:      row.Dimension.String(),
			Name:           row.Dimension.DisplayName(),
			Heading:        row.Heading(),
			Level:          int(row.Level),
			Label:          row.LevelLabel.String(),
			Description:    row.Description,
			Recommendation: row.Recommendation,
			TopExemplar:    row.TopExemplar,
			SupportNote:    row.SupportNote,
		}
	}
	return out
}

// dimensionResponse describes a dimension and its four levels.
type dimensionResponse struct {
	Dimension string          `json:"dimension"`
	Name      string          `json:"name"`
	Levels    []levelResponse `json:"levels"`
}

type levelResponse struct {
	Level       int    `json:"level"`
	Option      string `json:"option"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// sessionResponse is the state of an in-progress assessment.
type sessionResponse struct {
	ID       string         `json:"id"`
	Levels   map[string]int `json:"levels"`
	Missing  []string       `json:"missing"`
	Complete bool           `json:"complete"`
}

func newSessionResponse(session *domain.Session) sessionResponse {
	out := sessionResponse{
		ID:       session.ID,
		Levels:   make(map[string]int),
		Missing:  []string{},
		Complete: session.Assessment.Complete(),
	}
	for d, l := range session.Assessment.Levels() {
		out.Levels[d.String()] = int(l)
	}
	for _, d := range session.Assessment.Missing() {
		out.Missing = append(out.Missing, d.String())
	}
	return out
}

// errorResponse is the body of every error reply.
type errorResponse struct {
	Error     string   `json:"error"`
	Missing   []string `json:"missing,omitempty"`
	Retryable bool     `json:"retryable,omitempty"`
}
