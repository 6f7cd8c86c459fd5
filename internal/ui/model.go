package ui

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gubarz/ankimd/internal/editor"
)

const highlightSymbol = ">>"

// model is the Bubble Tea model for reviewing and editing a deck
type model struct {
	width  int
	height int

	editor *editor.Editor
	input  textinput.Model
	keys   keyMap
	plain  bool

	quitting        bool
	exportRequested bool
}

// newModel creates a model over the editor state
func newModel(ed *editor.Editor, plain bool) model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	return model{
		editor: ed,
		input:  ti,
		keys:   defaultKeyMap(),
		plain:  plain,
	}
}

// Init implements tea.Model
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsMsg.Width
		m.height = wsMsg.Height
		m.input.Width = maxInt(wsMsg.Width-6, 1)
		return m, nil
	}

	if m.editor.Editing() {
		return m.updateEditing(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		cmd := m.handleBrowseKey(msg)
		return m, cmd
	}
	return m, nil
}

// handleBrowseKey processes keyboard input while browsing cards
func (m *model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Deselect):
		m.editor.Deselect()
	case key.Matches(msg, m.keys.Down):
		m.editor.Next()
	case key.Matches(msg, m.keys.Up):
		m.editor.Prev()
	case key.Matches(msg, m.keys.EditFront):
		return m.beginEdit(editor.FieldFront)
	case key.Matches(msg, m.keys.EditBack):
		return m.beginEdit(editor.FieldBack)
	case key.Matches(msg, m.keys.EditTags):
		return m.beginEdit(editor.FieldTags)
	case key.Matches(msg, m.keys.Delete):
		if m.editor.Len() > 0 {
			slog.Debug("card deleted", "index", m.editor.Last())
			m.editor.Delete()
		}
	case key.Matches(msg, m.keys.New):
		m.editor.Add()
		slog.Debug("card added", "cards", m.editor.Len())
	case key.Matches(msg, m.keys.Export):
		m.exportRequested = true
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// beginEdit loads the field into the text input
func (m *model) beginEdit(field editor.Field) tea.Cmd {
	text, ok := m.editor.BeginEdit(field)
	if !ok {
		return nil
	}
	m.input.SetValue(text)
	m.input.CursorEnd()
	return m.input.Focus()
}

// updateEditing forwards input to the text field until esc
func (m model) updateEditing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Done) {
		field := m.editor.EditingField()
		m.editor.CommitEdit(m.input.Value())
		m.input.Blur()
		m.input.SetValue("")
		slog.Debug("card edited", "index", m.editor.Last(), "field", field)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m model) View() string {
	if m.quitting {
		return ""
	}

	width := maxInt(m.width, 40)
	height := maxInt(m.height, 12)

	infoHeight := maxInt(height/5, 4)
	bodyHeight := height - infoHeight
	listWidth := width / 2

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderList(listWidth, bodyHeight),
		m.renderPreview(width-listWidth, bodyHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderInfo(width, infoHeight), body)
}

// renderInfo renders the help text, or the field being edited
func (m model) renderInfo(width, height int) string {
	content := m.keys.helpLine()
	if m.editor.Editing() {
		content = m.input.View()
	}
	return box(m.editor.Title(), styles.Preview.Width(maxInt(width-2, 1)).Render(content), width, height)
}

// renderList renders the scrollable list of card fronts
func (m model) renderList(width, height int) string {
	rows := maxInt(height-3, 1) // border and title
	cards := m.editor.Cards()
	selected, hasSel := m.editor.Selected()
	cursor := m.editor.Last()
	if hasSel {
		cursor = selected
	}

	start, end := listWindow(cursor, len(cards), rows)
	textWidth := maxInt(width-2-len(highlightSymbol), 1)

	b := getBuilder()
	defer putBuilder(b)
	for i := start; i < end; i++ {
		front := truncateString(firstLine(cards[i].Front), textWidth)
		if hasSel && i == selected {
			b.WriteString(styles.Highlight.Render(highlightSymbol + front))
		} else {
			b.WriteString(strings.Repeat(" ", len(highlightSymbol)) + front)
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	if len(cards) == 0 {
		b.WriteString(styles.Dim.Render("No cards. Press n to add one."))
	}

	return box("Cards", b.String(), width, height)
}

// renderPreview renders the front, back and tags of the current card
func (m model) renderPreview(width, height int) string {
	var front, back, tags string
	if c := m.editor.Current(); c != nil {
		front = previewText(c.Front, m.plain)
		back = previewText(c.Back, m.plain)
		tags = c.Tags
	}

	frontHeight := height * 2 / 5
	backHeight := height * 2 / 5
	tagsHeight := height - frontHeight - backHeight
	inner := maxInt(width-2, 1)

	return lipgloss.JoinVertical(lipgloss.Left,
		box("Front", styles.Preview.Width(inner).Render(front), width, frontHeight),
		box("Back", styles.Preview.Width(inner).Render(back), width, backHeight),
		box("Tags", styles.Preview.Width(inner).Render(tags), width, tagsHeight),
	)
}

// box draws a bordered pane of the given outer size with a title line
func box(title, content string, width, height int) string {
	innerWidth := maxInt(width-2, 1)
	innerHeight := maxInt(height-2, 1)
	return styles.Border.
		Width(innerWidth).
		Height(innerHeight).
		MaxHeight(height).
		Render(styles.Title.Render(title) + "\n" + content)
}
