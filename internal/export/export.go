// Package export writes cards in Anki's plain-text import format.
package export

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gubarz/ankimd/internal/card"
)

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct {
	fallback io.Writer
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		_, err := io.WriteString(c.fallback, text)
		return err
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Rendering
// ============================================================================

// Render concatenates the import lines of every card
func Render(cards []*card.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.Export())
	}
	return b.String()
}

// ============================================================================
// Exporter
// ============================================================================

// Mode represents where the exported deck goes
type Mode string

const (
	ModeFile  Mode = "file"
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeFile, ModePrint, ModeCopy:
		return m, nil
	case "":
		return ModeFile, nil
	default:
		return "", fmt.Errorf("unsupported output mode: %s (supported: file, print, copy)", s)
	}
}

// Exporter writes a deck using the configured mode
type Exporter struct {
	mode      Mode
	extension string
	stdout    io.Writer
	clipboard Clipboard
}

// NewExporter creates an exporter. extension is appended to file names.
func NewExporter(mode Mode, extension string) *Exporter {
	return &Exporter{
		mode:      mode,
		extension: extension,
		stdout:    os.Stdout,
		clipboard: &systemClipboard{fallback: os.Stdout},
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (e *Exporter) WithClipboard(c Clipboard) *Exporter {
	e.clipboard = c
	return e
}

// WithStdout redirects print mode output
func (e *Exporter) WithStdout(w io.Writer) *Exporter {
	e.stdout = w
	return e
}

// Path returns the file written for name in file mode
func (e *Exporter) Path(name string) string {
	return name + e.extension
}

// Write exports the cards. In file mode the output is name plus the
// configured extension, replaced if it exists, and the text ends with
// an extra newline after the last card.
func (e *Exporter) Write(cards []*card.Card, name string) error {
	text := Render(cards)

	switch e.mode {
	case ModePrint:
		_, err := io.WriteString(e.stdout, text)
		return err
	case ModeCopy:
		return e.clipboard.Copy(text)
	default:
		path := e.Path(name)
		if err := os.WriteFile(path, []byte(text+"\n"), 0o644); err != nil {
			return fmt.Errorf("couldn't write to file %s: %w", path, err)
		}
		return nil
	}
}
