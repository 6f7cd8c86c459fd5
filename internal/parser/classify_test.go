package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		line string
		mode Mode
		want Result
	}{
		// Between sections
		{name: "main tag", line: "# Cell Biology", mode: ModeNone, want: Result{Role: RoleMainTag, Payload: "Cell Biology"}},
		{name: "main tag keeps trailing space", line: "# Intro ", mode: ModeNone, want: Result{Role: RoleMainTag, Payload: "Intro "}},
		{name: "sub tag after ## and space", line: "## 1. Cells", mode: ModeNone, want: Result{Role: RoleSubTag, Payload: "1. Cells"}},
		{name: "sub tag after first space", line: "##x Cells", mode: ModeNone, want: Result{Role: RoleSubTag, Payload: "Cells"}},
		{name: "sub tag trailing space gives empty tag", line: "##x ", mode: ModeNone, want: Result{Role: RoleSubTag, Payload: ""}},
		{name: "question directive", line: "[](question)", mode: ModeNone, want: Result{Mode: ModeQuestion}},
		{name: "definition directive", line: "[](definition)", mode: ModeNone, want: Result{Mode: ModeDefinition}},
		{name: "directive ignores trailing text", line: "[](question) notes", mode: ModeNone, want: Result{Mode: ModeQuestion}},
		{name: "blank line ignored", line: "", mode: ModeNone, want: Result{Mode: ModeNone}},
		{name: "prose ignored", line: "Some notes", mode: ModeNone, want: Result{Mode: ModeNone}},
		{name: "dash ignored outside section", line: "- Q2", mode: ModeNone, want: Result{Mode: ModeNone}},

		// Question section
		{name: "question front", line: "- What is 2+2?", mode: ModeQuestion, want: Result{Role: RoleFront, Payload: "What is 2+2?", Mode: ModeQuestion}},
		{name: "question front skips any second char", line: "-xWhat", mode: ModeQuestion, want: Result{Role: RoleFront, Payload: "What", Mode: ModeQuestion}},
		{name: "question front may be empty", line: "- ", mode: ModeQuestion, want: Result{Role: RoleFront, Payload: "", Mode: ModeQuestion}},
		{name: "question front multibyte", line: "- éclair", mode: ModeQuestion, want: Result{Role: RoleFront, Payload: "éclair", Mode: ModeQuestion}},
		{name: "definition front multibyte", line: "- **Größe**", mode: ModeDefinition, want: Result{Role: RoleFront, Payload: "Größe", Mode: ModeDefinition}},
		{name: "question back", line: "    4", mode: ModeQuestion, want: Result{Role: RoleBack, Payload: "4", Mode: ModeQuestion}},
		{name: "question back keeps deeper indent", line: "      nested", mode: ModeQuestion, want: Result{Role: RoleBack, Payload: "  nested", Mode: ModeQuestion}},
		{name: "question back exactly indent", line: "    ", mode: ModeQuestion, want: Result{Role: RoleBack, Payload: "", Mode: ModeQuestion}},
		{name: "blank line closes question section", line: "", mode: ModeQuestion, want: Result{Mode: ModeNone}},

		// Definition section
		{name: "definition front", line: "- **Osmosis**: water", mode: ModeDefinition, want: Result{Role: RoleFront, Payload: "Osmosis", Mode: ModeDefinition}},
		{name: "definition front is positional", line: "- term*", mode: ModeDefinition, want: Result{Role: RoleFront, Payload: "rm", Mode: ModeDefinition}},
		{name: "definition body closes section", line: "Diffusion of water", mode: ModeDefinition, want: Result{Role: RoleBack, Payload: "Diffusion of water", Mode: ModeNone}},
		{name: "definition body keeps indent", line: "  indented body", mode: ModeDefinition, want: Result{Role: RoleBack, Payload: "  indented body", Mode: ModeNone}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.line, 0, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyErrors(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		mode   Mode
		kind   error
		symbol rune
	}{
		{name: "lone hash", line: "#", mode: ModeNone, kind: ErrUnexpectedEndOfLine},
		{name: "hash then letter", line: "#main", mode: ModeNone, kind: ErrUnknownSymbol, symbol: 'm'},
		{name: "hash then multibyte", line: "#é", mode: ModeNone, kind: ErrUnknownSymbol, symbol: 'é'},
		{name: "sub tag without space", line: "##badsub", mode: ModeNone, kind: ErrUnexpectedEndOfLine},
		{name: "directive without paren", line: "[](question", mode: ModeNone, kind: ErrUnexpectedEndOfLine},
		{name: "unknown directive", line: "[](essay)", mode: ModeNone, kind: ErrUnknownAttribute},
		{name: "directive label shifts token", line: "[x](question)", mode: ModeNone, kind: ErrUnknownAttribute},
		{name: "directive paren too early", line: "[)", mode: ModeNone, kind: ErrUnknownAttribute},
		{name: "question unknown symbol", line: "answer", mode: ModeQuestion, kind: ErrUnknownSymbol, symbol: 'a'},
		{name: "question tab indent", line: "\tanswer", mode: ModeQuestion, kind: ErrUnknownSymbol, symbol: '\t'},
		{name: "question lone dash", line: "-", mode: ModeQuestion, kind: ErrUnexpectedEndOfLine},
		{name: "question short back", line: "  a", mode: ModeQuestion, kind: ErrUnexpectedEndOfLine},
		{name: "question front splits character", line: "-éWhat", mode: ModeQuestion, kind: ErrUnknownSymbol, symbol: 'é'},
		{name: "question back splits character", line: "   éx", mode: ModeQuestion, kind: ErrUnknownSymbol, symbol: 'é'},
		{name: "definition front splits character", line: "- €**term**", mode: ModeDefinition, kind: ErrUnknownSymbol, symbol: '€'},
		{name: "definition blank line", line: "", mode: ModeDefinition, kind: ErrUnexpectedEndOfLine},
		{name: "definition without star", line: "- term", mode: ModeDefinition, kind: ErrUnexpectedEndOfLine},
		{name: "definition star too early", line: "- **term", mode: ModeDefinition, kind: ErrUnexpectedEndOfLine},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.line, 7, tt.mode)
			require.ErrorIs(t, err, tt.kind)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 7, perr.Line)
			assert.Equal(t, tt.symbol, perr.Symbol)
		})
	}
}

func TestParseErrorMessages(t *testing.T) {
	assert.Equal(t, "Unknown symbol: x on line 3", unknownSymbol(3, 'x').Error())
	assert.Equal(t, "Unexpected end of line at line 1", unexpectedEOL(1).Error())
	assert.Equal(t, "Unknown attribute encountered on line 0", unknownAttribute(0).Error())
}

func TestModeAndRoleStrings(t *testing.T) {
	assert.Equal(t, "none", ModeNone.String())
	assert.Equal(t, "question", ModeQuestion.String())
	assert.Equal(t, "definition", ModeDefinition.String())
	assert.Equal(t, "front", RoleFront.String())
	assert.Equal(t, "sub-tag", RoleSubTag.String())
}
