package domain

// ContentEntry holds the catalog text for one dimension and level.
type ContentEntry struct {
	// Description explains what the level looks like for the dimension.
	Description string

	// Recommendation is the next step from this level.
	Recommendation string

	// TopExemplar is the level-4 description of the dimension.
	// It is the same for every level of a dimension.
	TopExemplar string

	// SupportNote describes how the product supports the next step.
	SupportNote string
}

// IsComplete returns true if every text field is non-empty.
func (e ContentEntry) IsComplete() bool {
	return e.Description != "" && e.Recommendation != "" &&
		e.TopExemplar != "" && e.SupportNote != ""
}

// LevelDefinition describes one level of a dimension, as shown next to the
// level choices.
type LevelDefinition struct {
	Level       Level
	Label       MaturityLabel
	Description string
}
