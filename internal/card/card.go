// Package card holds the flashcard record produced by the parser and
// consumed by the editor and exporter.
package card

import "fmt"

// LineBreak separates back lines. Anki renders it as a line break on import.
const LineBreak = "<br>"

// Card represents a single Anki note
type Card struct {
	Front string // Question text, or "Define: <term>"
	Back  string // Answer body, each line terminated by LineBreak
	Tags  string // Space-separated main and sub tag
}

// New creates a card, storing every field verbatim
func New(front, back, tags string) *Card {
	return &Card{
		Front: front,
		Back:  back,
		Tags:  tags,
	}
}

// AppendBack adds one more line of text to the back of the card
func (c *Card) AppendBack(text string) {
	c.Back += text + LineBreak
}

// Export returns the card as a line Anki can import.
// Fields are not escaped, so a ';' inside a field shifts the columns.
func (c *Card) Export() string {
	return c.Front + ";" + c.Back + ";" + c.Tags + "\n"
}

func (c *Card) String() string {
	return fmt.Sprintf("|%s|\n|%s|\ntags: %s", c.Front, c.Back, c.Tags)
}
