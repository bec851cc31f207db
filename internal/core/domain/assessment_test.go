package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessment_SetAndLevel(t *testing.T) {
	a := NewAssessment()
	require.NoError(t, a.Set(DimensionGovernance, LevelSelfAware))

	l, ok := a.Level(DimensionGovernance)
	assert.True(t, ok)
	assert.Equal(t, LevelSelfAware, l)

	_, ok = a.Level(DimensionFaultDetection)
	assert.False(t, ok)
	assert.Equal(t, 1, a.Len())

	// replacing an answer keeps one entry
	require.NoError(t, a.Set(DimensionGovernance, LevelPioneering))
	l, _ = a.Level(DimensionGovernance)
	assert.Equal(t, LevelPioneering, l)
	assert.Equal(t, 1, a.Len())
}

func TestAssessment_SetRejectsInvalid(t *testing.T) {
	a := NewAssessment()
	assert.ErrorIs(t, a.Set(Dimension("energy"), LevelReactive), ErrInvalidInput)
	assert.ErrorIs(t, a.Set(DimensionGovernance, Level(0)), ErrInvalidInput)
	assert.ErrorIs(t, a.Set(DimensionGovernance, Level(5)), ErrInvalidInput)
	assert.Equal(t, 0, a.Len())
}

func TestAssessment_ZeroValue(t *testing.T) {
	var a Assessment
	assert.Len(t, a.Missing(), 5)
	require.NoError(t, a.Set(DimensionOutcomeAlignment, LevelReactive))
	assert.Equal(t, 1, a.Len())

	var nilAssessment *Assessment
	assert.Equal(t, 0, nilAssessment.Len())
	assert.False(t, nilAssessment.Complete())
	assert.Empty(t, nilAssessment.Levels())
}

func TestAssessment_MissingInDeclaredOrder(t *testing.T) {
	a, err := AssessmentFrom(map[Dimension]Level{
		DimensionOutcomeAlignment: LevelReactive,
		DimensionKnowledgeCapture: LevelPioneering,
	})
	require.NoError(t, err)

	assert.Equal(t, []Dimension{
		DimensionGovernance,
		DimensionFaultDetection,
		DimensionProcessStructure,
	}, a.Missing())
	assert.False(t, a.Complete())

	err = a.Validate()
	var incomplete *IncompleteAssessmentError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, a.Missing(), incomplete.Missing)
}

func TestAssessment_Complete(t *testing.T) {
	a := NewAssessment()
	for _, d := range AllDimensions() {
		require.NoError(t, a.Set(d, LevelForwardThinking))
	}
	assert.True(t, a.Complete())
	assert.Empty(t, a.Missing())
	assert.NoError(t, a.Validate())
}

func TestAssessmentFrom_Invalid(t *testing.T) {
	_, err := AssessmentFrom(map[Dimension]Level{DimensionGovernance: 9})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAssessment_CloneIsIndependent(t *testing.T) {
	a := NewAssessment()
	require.NoError(t, a.Set(DimensionGovernance, LevelReactive))

	c := a.Clone()
	require.NoError(t, c.Set(DimensionGovernance, LevelPioneering))

	l, _ := a.Level(DimensionGovernance)
	assert.Equal(t, LevelReactive, l)

	levels := a.Levels()
	levels[DimensionFaultDetection] = LevelReactive
	_, ok := a.Level(DimensionFaultDetection)
	assert.False(t, ok)
}

func TestParseAnswers(t *testing.T) {
	t.Run("resolves spellings", func(t *testing.T) {
		a, err := ParseAnswers(map[string]Level{
			"governance":        LevelForwardThinking,
			"Outcome Alignment": LevelSelfAware,
		})
		require.NoError(t, err)
		l, ok := a.Level(DimensionOutcomeAlignment)
		assert.True(t, ok)
		assert.Equal(t, LevelSelfAware, l)
		assert.Equal(t, 2, a.Len())
	})

	t.Run("duplicate dimension", func(t *testing.T) {
		_, err := ParseAnswers(map[string]Level{
			"governance": LevelPioneering,
			"Governance": LevelReactive,
		})
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "duplicate dimension governance")
	})

	t.Run("unknown dimension", func(t *testing.T) {
		_, err := ParseAnswers(map[string]Level{"energy": LevelReactive})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("level out of range", func(t *testing.T) {
		_, err := ParseAnswers(map[string]Level{"governance": 0})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
