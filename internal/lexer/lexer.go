// Package lexer splits text into words, numbers and punctuation. Tokens come
// from a slot arena and their text is interned, so repeated identifiers cost
// neither an allocation nor a duplicate string.
package lexer

import (
	"unicode"
	"unicode/utf8"

	arena "github.com/pavanmanishd/slotarena"
	"github.com/pavanmanishd/slotarena/intern"
)

// Lexer tokenizes lines of text. It is not safe for concurrent use.
type Lexer struct {
	tokens *arena.Arena[*Token]
	table  *intern.Table
	count  uint64
}

// New returns a Lexer that pools up to capacity tokens per document and
// interns token text through table.
func New(capacity int, table *intern.Table) (*Lexer, error) {
	tokens, err := arena.New(capacity, func() *Token { return new(Token) })
	if err != nil {
		return nil, err
	}
	return &Lexer{tokens: tokens, table: table}, nil
}

// Tokenize scans one line and calls emit for every token in order.
func (l *Lexer) Tokenize(line []byte, lineNo int, emit func(*Token)) {
	var prev *Token
	for i := 0; i < len(line); {
		r, size := rune(line[i]), 1
		if r >= utf8.RuneSelf {
			r, size = utf8.DecodeRune(line[i:])
		}
		if unicode.IsSpace(r) {
			i += size
			continue
		}

		start := i
		var kind Kind
		var text string
		switch {
		case isWordStart(r):
			end, ascii := scanWord(line, i)
			kind, i = Word, end
			if ascii {
				text = l.table.AddASCII(line[start:end])
			} else {
				text = l.table.AddUTF8(line[start:end])
			}
		case isDigit(r):
			end := scanNumber(line, i)
			kind, i = Number, end
			text = l.table.AddASCII(line[start:end])
		default:
			kind, i = Punct, i+size
			text = l.table.AddRune(r)
		}

		tok := l.tokens.Alloc()
		tok.Kind = kind
		tok.Text = text
		tok.Line = lineNo
		tok.Col = start + 1
		tok.Prev = prev
		prev = tok
		l.count++
		emit(tok)
	}
}

// Reset recycles every token handed out since the last Reset.
func (l *Lexer) Reset() {
	l.tokens.Reset()
}

// Table returns the intern table used for token text.
func (l *Lexer) Table() *intern.Table {
	return l.table
}

// Stats is a snapshot of lexer activity.
type Stats struct {
	Tokens uint64
	Arena  arena.ArenaMetrics
	Intern intern.Stats
}

// Stats returns token, arena and intern counters.
func (l *Lexer) Stats() Stats {
	return Stats{
		Tokens: l.count,
		Arena:  l.tokens.Metrics(),
		Intern: l.table.Stats(),
	}
}

func isWordStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// scanWord returns the end of the word starting at i and whether it is pure ASCII.
func scanWord(line []byte, i int) (end int, ascii bool) {
	ascii = true
	for i < len(line) {
		c := line[i]
		if c < utf8.RuneSelf {
			if c != '_' && !isDigit(rune(c)) && !unicode.IsLetter(rune(c)) {
				break
			}
			i++
			continue
		}
		r, size := utf8.DecodeRune(line[i:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			break
		}
		ascii = false
		i += size
	}
	return i, ascii
}

func scanNumber(line []byte, i int) int {
	for i < len(line) && (isDigit(rune(line[i])) || line[i] == '.' || line[i] == '_') {
		i++
	}
	return i
}
