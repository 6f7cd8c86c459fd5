// Package editor holds the review state for a parsed deck: which card is
// selected, which field is being edited, and the add/delete operations.
// It has no terminal dependencies so the UI stays a thin key mapping.
package editor

import "github.com/gubarz/ankimd/internal/card"

// Field is a card attribute the user can edit
type Field int

const (
	FieldFront Field = iota
	FieldBack
	FieldTags
)

func (f Field) String() string {
	switch f {
	case FieldBack:
		return "Back"
	case FieldTags:
		return "Tags"
	default:
		return "Front"
	}
}

// NewCardFront is the placeholder front of cards added by the user
const NewCardFront = "New Card"

const (
	titleInfo    = "Info"
	titleEditing = "Editing. Press <esc> when finished"
)

// Editor tracks selection and edit state over a deck
type Editor struct {
	cards    []*card.Card
	selected int
	hasSel   bool
	last     int // Last selected card; target of edits and deletes
	editing  bool
	field    Field
}

// New creates an editor over the given cards
func New(cards []*card.Card) *Editor {
	return &Editor{cards: cards}
}

// Cards returns the deck in its current order
func (e *Editor) Cards() []*card.Card {
	return e.cards
}

// Len returns the number of cards
func (e *Editor) Len() int {
	return len(e.cards)
}

// Selected returns the highlighted index, if any
func (e *Editor) Selected() (int, bool) {
	return e.selected, e.hasSel
}

// Last returns the index of the card that edits apply to
func (e *Editor) Last() int {
	return e.last
}

// Current returns the card shown in the preview, or nil for an empty deck
func (e *Editor) Current() *card.Card {
	idx := e.last
	if e.hasSel {
		idx = e.selected
	}
	if idx < 0 || idx >= len(e.cards) {
		return nil
	}
	return e.cards[idx]
}

// Editing reports whether a field is being edited
func (e *Editor) Editing() bool {
	return e.editing
}

// EditingField returns the field being edited
func (e *Editor) EditingField() Field {
	return e.field
}

// Title returns the heading for the info box
func (e *Editor) Title() string {
	if e.editing {
		return titleEditing
	}
	return titleInfo
}

// Next selects the following card, wrapping to the first
func (e *Editor) Next() {
	if len(e.cards) == 0 {
		return
	}
	switch {
	case !e.hasSel:
		e.selected = 0
	case e.selected >= len(e.cards)-1:
		e.selected = 0
	default:
		e.selected++
	}
	e.hasSel = true
	e.last = e.selected
}

// Prev selects the preceding card, wrapping to the last
func (e *Editor) Prev() {
	if len(e.cards) == 0 {
		return
	}
	switch {
	case !e.hasSel:
		e.selected = 0
	case e.selected > 0:
		e.selected--
	default:
		e.selected = len(e.cards) - 1
	}
	e.hasSel = true
	e.last = e.selected
}

// Deselect clears the highlight but keeps the edit target
func (e *Editor) Deselect() {
	e.hasSel = false
}

// BeginEdit starts editing a field of the last selected card and returns
// its current value. It returns false when there is nothing to edit.
func (e *Editor) BeginEdit(field Field) (string, bool) {
	c := e.target()
	if c == nil {
		return "", false
	}
	e.editing = true
	e.field = field
	return fieldValue(c, field), true
}

// CommitEdit stores text into the field being edited
func (e *Editor) CommitEdit(text string) {
	if !e.editing {
		return
	}
	if c := e.target(); c != nil {
		setFieldValue(c, e.field, text)
	}
	e.editing = false
}

// CancelEdit leaves editing mode without changing the card
func (e *Editor) CancelEdit() {
	e.editing = false
}

// Delete removes the last selected card
func (e *Editor) Delete() {
	if e.target() == nil {
		return
	}
	e.cards = append(e.cards[:e.last], e.cards[e.last+1:]...)
	if e.last >= len(e.cards) {
		e.selected = 0
		e.hasSel = true
		e.last = 0
	}
}

// Add appends a placeholder card to the end of the deck
func (e *Editor) Add() {
	e.cards = append(e.cards, card.New(NewCardFront, "", ""))
}

func (e *Editor) target() *card.Card {
	if e.last < 0 || e.last >= len(e.cards) {
		return nil
	}
	return e.cards[e.last]
}

func fieldValue(c *card.Card, field Field) string {
	switch field {
	case FieldBack:
		return c.Back
	case FieldTags:
		return c.Tags
	default:
		return c.Front
	}
}

func setFieldValue(c *card.Card, field Field, text string) {
	switch field {
	case FieldBack:
		c.Back = text
	case FieldTags:
		c.Tags = text
	default:
		c.Front = text
	}
}
