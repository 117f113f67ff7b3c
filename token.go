package wherelex

type TokenKind int

const (
	UnknownToken TokenKind = iota
	WordToken                // unreserved identifier, backtick-quoted on output
	KeywordToken             // reserved logical keyword, uppercased on output
	OperatorToken            // symbolic operator, or a mnemonic rewritten to one
	StringToken              // quoted literal, replaced by a bind marker
	NumberToken              // numeric literal, replaced by a bind marker
	PunctToken               // parenthesis or comma
)

var tokenKindToString = map[TokenKind]string{
	UnknownToken:  "unknown",
	WordToken:     "word",
	KeywordToken:  "keyword",
	OperatorToken: "op",
	StringToken:   "str",
	NumberToken:   "num",
	PunctToken:    "punct",
}

// String returns a string of the TokenKind and will return "unknown" for
// invalid kinds.
func (k TokenKind) String() string {
	s, ok := tokenKindToString[k]
	switch ok {
	case true:
		return s
	default:
		return tokenKindToString[UnknownToken]
	}
}

// Token is one classified span of the input expression. Start and End
// are byte offsets into the original text and Raw is the span itself,
// delimiters included for string literals. Kinds classify the input;
// the condition is built from the rewritten forms.
type Token struct {
	Kind  TokenKind
	Start int // byte offset start in original expression
	End   int // byte offset end (exclusive)
	Raw   string
}

type Tokens []Token

// Literals returns the string and number tokens in input order, one per
// bind marker in the condition.
func (ts Tokens) Literals() (lits Tokens) {
	lits = make(Tokens, 0, len(ts))
	for _, t := range ts {
		if t.Kind != StringToken && t.Kind != NumberToken {
			continue
		}
		lits = append(lits, t)
	}
	return lits
}
