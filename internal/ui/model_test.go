package ui

import (
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gubarz/ankimd/internal/card"
	"github.com/gubarz/ankimd/internal/editor"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func press(t *testing.T, m model, msgs ...tea.Msg) (model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		var ok bool
		m, ok = next.(model)
		require.True(t, ok)
	}
	return m, cmd
}

func testModel() (model, *editor.Editor) {
	ed := editor.New([]*card.Card{
		card.New("What is 2+2?", "4<br>", "Maths "),
		card.New("Define: term", "body<br>", " "),
	})
	return newModel(ed, true), ed
}

func TestNavigation(t *testing.T) {
	m, ed := testModel()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	idx, ok := ed.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	idx, _ = ed.Selected()
	assert.Equal(t, 0, idx)

	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	_, ok = ed.Selected()
	assert.False(t, ok)
}

func TestEditFrontCommitsOnEsc(t *testing.T) {
	m, ed := testModel()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runeKey('f'))
	require.True(t, ed.Editing())
	assert.Equal(t, "What is 2+2?", m.input.Value())

	m, _ = press(t, m,
		tea.KeyMsg{Type: tea.KeyBackspace},
		runeKey('!'),
		tea.KeyMsg{Type: tea.KeyEsc},
	)
	assert.False(t, ed.Editing())
	assert.Equal(t, "What is 2+2!", ed.Cards()[0].Front)
	assert.Empty(t, m.input.Value())
}

func TestEditingSwallowsCommandKeys(t *testing.T) {
	m, ed := testModel()

	m, _ = press(t, m, runeKey('t'), runeKey('q'), runeKey('d'))
	assert.False(t, m.quitting)
	assert.Equal(t, 2, ed.Len())

	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "Maths qd", ed.Cards()[0].Tags)
}

func TestEditBack(t *testing.T) {
	m, ed := testModel()

	_, _ = press(t, m, runeKey('b'), runeKey('x'), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "4<br>x", ed.Cards()[0].Back)
}

func TestNewAndDelete(t *testing.T) {
	m, ed := testModel()

	m, _ = press(t, m, runeKey('n'))
	require.Equal(t, 3, ed.Len())
	assert.Equal(t, editor.NewCardFront, ed.Cards()[2].Front)

	_, _ = press(t, m, runeKey('d'))
	require.Equal(t, 2, ed.Len())
	assert.Equal(t, "Define: term", ed.Cards()[0].Front)
}

func TestQuitAndExport(t *testing.T) {
	m, _ := testModel()
	quit, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, quit.quitting)
	assert.False(t, quit.exportRequested)

	m, _ = testModel()
	exported, cmd := press(t, m, runeKey('x'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, exported.exportRequested)
}

func TestViewRendersPreview(t *testing.T) {
	m, _ := testModel()
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30}, tea.KeyMsg{Type: tea.KeyDown})

	view := m.View()
	assert.Contains(t, view, "[q] quit | [f] edit front")
	assert.Contains(t, view, ">>What is 2+2?")
	assert.Contains(t, view, "Maths")
	assert.NotContains(t, view, "<br>")
}

func TestViewEmptyDeck(t *testing.T) {
	m := newModel(editor.New(nil), true)
	m, _ = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}, runeKey('f'), runeKey('d'))

	assert.Contains(t, m.View(), "No cards")
}

func TestPreviewText(t *testing.T) {
	assert.Equal(t, "line one\nline two\n", previewText("line one<br>line two<br>", true))
	assert.Equal(t, "bold & x < y", previewText("<b>bold</b> & x < y", true))
	assert.Equal(t, "<b>bold</b>\n", previewText("<b>bold</b><br>", false))
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		name                  string
		cursor, total, height int
		start, end            int
	}{
		{name: "empty", cursor: 0, total: 0, height: 5, start: 0, end: 0},
		{name: "fits", cursor: 2, total: 3, height: 5, start: 0, end: 3},
		{name: "scrolls to cursor", cursor: 9, total: 10, height: 4, start: 6, end: 10},
		{name: "cursor out of range", cursor: 20, total: 10, height: 4, start: 6, end: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := listWindow(tt.cursor, tt.total, tt.height)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "fits", in: "short", maxLen: 10, want: "short"},
		{name: "ascii", in: "What is the powerhouse", maxLen: 10, want: "What is..."},
		{name: "multibyte fits by width", in: "Größe", maxLen: 5, want: "Größe"},
		{name: "multibyte", in: "Größenordnung", maxLen: 8, want: "Größe..."},
		{name: "tiny limit untouched", in: "abcdef", maxLen: 3, want: "abcdef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateString(tt.in, tt.maxLen)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
