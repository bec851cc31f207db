package domain

import "strings"

// typographic maps punctuation that document backends may not render to
// plain ASCII. Every replacement is ASCII, so applying it twice is a no-op.
var typographic = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"•", "*", // bullet
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"‘", "'", // left single quote
	"’", "'", // right single quote / apostrophe
)

// Sanitize replaces typographic punctuation with ASCII equivalents.
// Apply it to free text only, never to structural or numeric fields.
func Sanitize(text string) string {
	return typographic.Replace(text)
}
