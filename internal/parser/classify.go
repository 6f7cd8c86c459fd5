package parser

import "unicode/utf8"

// Mode is the card type that governs how the next line is read
type Mode int

const (
	ModeNone       Mode = iota // Between sections: headings and directives
	ModeQuestion               // "- question" fronts, indented answer lines
	ModeDefinition             // "- **term**" fronts, one-line bodies
)

func (m Mode) String() string {
	switch m {
	case ModeQuestion:
		return "question"
	case ModeDefinition:
		return "definition"
	default:
		return "none"
	}
}

// Role is what a classified line contributes to the card list
type Role int

const (
	RoleNone Role = iota
	RoleFront
	RoleBack
	RoleMainTag
	RoleSubTag
)

func (r Role) String() string {
	switch r {
	case RoleFront:
		return "front"
	case RoleBack:
		return "back"
	case RoleMainTag:
		return "main-tag"
	case RoleSubTag:
		return "sub-tag"
	default:
		return "none"
	}
}

// Result is the outcome of classifying one line
type Result struct {
	Role    Role
	Payload string
	Mode    Mode // Mode to use for the following line
}

// Directive tokens accepted inside "[](...)"
const (
	tokenQuestion   = "question"
	tokenDefinition = "definition"
)

// Fixed payload offsets. The document format depends on them,
// so payloads are byte slices of the raw line, never trimmed.
const (
	mainTagOffset   = 2 // "# "
	directiveOffset = 3 // "[](" precedes the token
	frontOffset     = 2 // "- "
	backOffset      = 4 // four-space indent
	termOffset      = 4 // "- **"
	termStarAfter   = 4 // '*' must sit past this column of line[1:]
)

// Classify determines the role of a single line given the current mode.
// num is the 0-based line number used in errors.
func Classify(line string, num int, mode Mode) (Result, error) {
	switch mode {
	case ModeQuestion:
		return classifyQuestion(line, num)
	case ModeDefinition:
		return classifyDefinition(line, num)
	default:
		return classifyNone(line, num)
	}
}

// classifyNone handles headings and type directives between sections.
// Anything else, blank lines included, is ignored.
func classifyNone(line string, num int) (Result, error) {
	if line == "" {
		return Result{Mode: ModeNone}, nil
	}

	switch line[0] {
	case '#':
		if len(line) == 1 {
			return Result{}, unexpectedEOL(num)
		}
		switch line[1] {
		case ' ':
			return Result{Role: RoleMainTag, Payload: line[mainTagOffset:], Mode: ModeNone}, nil
		case '#':
			// "## <anything> <sub tag>": the tag starts after the first space
			for j := 2; j < len(line); j++ {
				if line[j] == ' ' {
					return Result{Role: RoleSubTag, Payload: line[j+1:], Mode: ModeNone}, nil
				}
			}
			return Result{}, unexpectedEOL(num)
		default:
			return Result{}, unknownSymbol(num, runeAt(line, 1))
		}
	case '[':
		for j := 1; j < len(line); j++ {
			if line[j] != ')' {
				continue
			}
			token := ""
			if j >= directiveOffset {
				token = line[directiveOffset:j]
			}
			switch token {
			case tokenQuestion:
				return Result{Mode: ModeQuestion}, nil
			case tokenDefinition:
				return Result{Mode: ModeDefinition}, nil
			default:
				return Result{}, unknownAttribute(num)
			}
		}
		return Result{}, unexpectedEOL(num)
	default:
		return Result{Mode: ModeNone}, nil
	}
}

// classifyQuestion handles a question section. A blank line closes it.
func classifyQuestion(line string, num int) (Result, error) {
	if line == "" {
		return Result{Mode: ModeNone}, nil
	}

	switch line[0] {
	case '-':
		if len(line) < frontOffset {
			return Result{}, unexpectedEOL(num)
		}
		if splitsRune(line, frontOffset) {
			return Result{}, unknownSymbol(num, runeAt(line, 1))
		}
		return Result{Role: RoleFront, Payload: line[frontOffset:], Mode: ModeQuestion}, nil
	case ' ':
		if len(line) < backOffset {
			return Result{}, unexpectedEOL(num)
		}
		if splitsRune(line, backOffset) {
			return Result{}, unknownSymbol(num, runeAt(line, runeStart(line, backOffset)))
		}
		return Result{Role: RoleBack, Payload: line[backOffset:], Mode: ModeQuestion}, nil
	default:
		return Result{}, unknownSymbol(num, runeAt(line, 0))
	}
}

// classifyDefinition handles a definition section. The body is exactly one
// line and closes the section; a blank line here is an error, unlike in a
// question section.
func classifyDefinition(line string, num int) (Result, error) {
	if line == "" {
		return Result{}, unexpectedEOL(num)
	}

	if line[0] != '-' {
		return Result{Role: RoleBack, Payload: line, Mode: ModeNone}, nil
	}

	// Positions are counted over line[1:], so "- **term**" yields "term":
	// the payload ends just before the first closing '*'.
	if splitsRune(line, termOffset) {
		return Result{}, unknownSymbol(num, runeAt(line, runeStart(line, termOffset)))
	}
	for j := 1; j < len(line); j++ {
		if line[j] == '*' && j-1 > termStarAfter {
			return Result{Role: RoleFront, Payload: line[termOffset:j], Mode: ModeDefinition}, nil
		}
	}
	return Result{}, unexpectedEOL(num)
}

// splitsRune reports whether a payload starting at byte offset i would
// begin in the middle of a multibyte character
func splitsRune(line string, i int) bool {
	return i < len(line) && !utf8.RuneStart(line[i])
}

// runeStart returns the offset of the character containing byte i
func runeStart(line string, i int) int {
	for i > 0 && !utf8.RuneStart(line[i]) {
		i--
	}
	return i
}

// runeAt decodes the character starting at byte offset i
func runeAt(s string, i int) rune {
	r, _ := utf8.DecodeRuneInString(s[i:])
	return r
}
