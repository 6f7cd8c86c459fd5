// Package parser turns a flashcard markdown document into cards.
//
// The document is read line by line. Between sections, "# " and "## "
// headings set the main and sub tag, and a "[](question)" or
// "[](definition)" directive opens a section:
//
//	# Biology
//	## 1. Cells
//	[](question)
//	- What is the powerhouse of the cell?
//	    The mitochondria
//
//	[](definition)
//	- **Osmosis**: movement of water
//	Diffusion of water across a membrane
//
// A blank line silently closes a question section. A definition section
// has a one-line body that closes it, and a blank line there is an error.
// The asymmetry is part of the format.
package parser

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gubarz/ankimd/internal/card"
)

// DefinePrefix is prepended to the front of definition cards
const DefinePrefix = "Define: "

// Parser converts documents into cards. It holds no per-document state,
// so one Parser may be reused and called concurrently.
type Parser struct {
	mainTag string
	subTag  string
	logger  *slog.Logger
}

// Option configures a Parser
type Option func(*Parser)

// WithScope sets the tag scope a document starts with
func WithScope(mainTag, subTag string) Option {
	return func(p *Parser) {
		p.mainTag = mainTag
		p.subTag = subTag
	}
}

// WithLogger traces section changes at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a new parser
func NewParser(opts ...Option) *Parser {
	p := &Parser{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses a document with a default parser
func Parse(markdown string) ([]*card.Card, error) {
	return NewParser().Parse(markdown)
}

// ParseFile reads and parses a single document
func ParseFile(path string) ([]*card.Card, error) {
	return NewParser().ParseFile(path)
}

// ParseFile reads and parses a single document
func (p *Parser) ParseFile(path string) ([]*card.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return p.Parse(string(data))
}

// Parse converts the whole document into cards. On the first malformed
// line it returns the error and no cards.
func (p *Parser) Parse(markdown string) ([]*card.Card, error) {
	return p.parseLines(splitLines(markdown))
}

// scope is the tag state carried from line to line
type scope struct {
	mainTag string
	subTag  string
}

// tags sanitizes each tag on its own, then joins them
func (s scope) tags() string {
	return sanitizeTag(s.mainTag) + " " + sanitizeTag(s.subTag)
}

// sanitizeTag turns a heading into a single Anki tag
func sanitizeTag(tag string) string {
	return strings.ReplaceAll(strings.ReplaceAll(tag, " ", "_"), ",", "")
}

// splitLines breaks a document on "\n", dropping a trailing "\r" from each
// line. A final newline does not start an extra empty line.
func splitLines(markdown string) []string {
	if markdown == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(markdown, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (p *Parser) parseLines(lines []string) ([]*card.Card, error) {
	cards := make([]*card.Card, 0)
	tags := scope{mainTag: p.mainTag, subTag: p.subTag}
	mode := ModeNone

	for num, line := range lines {
		res, err := Classify(line, num, mode)
		if err != nil {
			return nil, err
		}
		if res.Mode != mode {
			p.logger.Debug("section changed", "line", num, "from", mode, "to", res.Mode)
		}
		mode = res.Mode

		switch res.Role {
		case RoleMainTag:
			tags.mainTag = res.Payload
		case RoleSubTag:
			tags.subTag = res.Payload
		case RoleFront:
			front := res.Payload
			if mode == ModeDefinition {
				front = DefinePrefix + front
			}
			cards = append(cards, card.New(front, "", tags.tags()))
		case RoleBack:
			if len(cards) == 0 {
				p.logger.Debug("dropping back line without a card", "line", num)
				continue
			}
			cards[len(cards)-1].AppendBack(res.Payload)
		}
	}

	p.logger.Debug("document parsed", "cards", len(cards))
	return cards, nil
}
