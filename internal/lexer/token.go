package lexer

// Kind classifies a token.
type Kind uint8

const (
	Word Kind = iota + 1
	Number
	Punct
)

func (k Kind) String() string {
	switch k {
	case Word:
		return "word"
	case Number:
		return "number"
	case Punct:
		return "punct"
	}
	return "unknown"
}

// Token is one lexeme. Tokens are pooled by the Lexer and are only valid
// until the Lexer is reset.
type Token struct {
	Kind Kind
	Text string // interned
	Line int
	Col  int // 1-based byte column

	// Prev is the previous token on the same line.
	Prev *Token
}

// ClearReferences implements arena.Participant.
func (t *Token) ClearReferences() {
	t.Text = ""
	t.Prev = nil
}
