package wherelex

import (
	"strconv"
	"strings"
)

type scanState struct {
	src    string
	n      int
	i      int
	parts  []string
	args   Values
	tokens Tokens
	prefix string
	style  ParamStyle
}

func newScanState(expr WhereExpr, opts translateOpts) scanState {
	return scanState{
		src:    string(expr),
		n:      len(expr),
		i:      0,
		parts:  make([]string, 0),
		args:   make(Values, 0),
		tokens: make(Tokens, 0),
		prefix: opts.prefix,
		style:  opts.style,
	}
}

func (s *scanState) peek(k int) (b byte) {
	if s.i+k < s.n {
		b = s.src[s.i+k]
	}
	return b
}

func (s *scanState) emit(part string) {
	s.parts = append(s.parts, part)
}

// emitPlaceholder appends a literal to the args and a bind marker to the
// output; the two stay positionally aligned by construction.
func (s *scanState) emitPlaceholder(v any) {
	s.args = append(s.args, v)
	s.emit(s.style.placeholder(len(s.args)))
}

func (s *scanState) addToken(kind TokenKind, start int) {
	s.tokens = append(s.tokens, Token{
		Kind:  kind,
		Start: start,
		End:   s.i,
		Raw:   s.src[start:s.i],
	})
}

// consumeString scans a quoted literal. The byte at s.i is the opening
// quote; only the same byte closes the string, so the other two quote
// characters are plain content. There is no escape mechanism.
func (s *scanState) consumeString() (err error) {
	q := s.src[s.i]
	start := s.i
	s.i++
	for s.i < s.n {
		c := s.src[s.i]
		s.i++
		if c == q {
			s.addToken(StringToken, start)
			s.emitPlaceholder(s.src[start+1 : s.i-1])
			goto end
		}
	}
	err = NewErr(ErrUnterminatedString,
		"near", snippet(s.src[start:]),
		"offset", start,
	)
end:
	return err
}

// consumeNumber scans an optionally signed integer or simple decimal.
// A bare sign, a trailing dot, or more than one dot is malformed; no
// exponent form is accepted.
func (s *scanState) consumeNumber() (err error) {
	var raw string
	var digits, dots int
	var iv int64
	var fv float64
	var perr error

	start := s.i
	if s.src[s.i] == '-' || s.src[s.i] == '+' {
		s.i++
	}
	for s.i < s.n {
		c := s.src[s.i]
		if c >= '0' && c <= '9' {
			digits++
			s.i++
			continue
		}
		if c == '.' {
			dots++
			s.i++
			continue
		}
		break
	}
	raw = s.src[start:s.i]
	if digits == 0 || dots > 1 || raw[len(raw)-1] == '.' {
		err = NewErr(ErrMalformedNumber, "number", raw, "offset", start)
		goto end
	}
	if dots == 0 {
		iv, perr = strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			err = NewErr(ErrMalformedNumber, "number", raw, "offset", start)
			goto end
		}
		s.addToken(NumberToken, start)
		s.emitPlaceholder(iv)
		goto end
	}
	fv, perr = strconv.ParseFloat(raw, 64)
	if perr != nil {
		err = NewErr(ErrMalformedNumber, "number", raw, "offset", start)
		goto end
	}
	s.addToken(NumberToken, start)
	s.emitPlaceholder(fv)
end:
	return err
}

// consumeWord scans an identifier-shaped token and resolves it against
// the mnemonic and keyword tables before deciding how to emit it. The
// whole word is scanned first so that "gtx" stays an identifier.
func (s *scanState) consumeWord() (err error) {
	var word, lower, op string
	var ok bool

	start := s.i
	s.i++
	for s.i < s.n && isWordChar(s.src[s.i]) {
		s.i++
	}
	word = s.src[start:s.i]
	lower = strings.ToLower(word)

	op, ok = mnemonicOps[lower]
	if ok {
		s.addToken(OperatorToken, start)
		s.emit(op)
		goto end
	}
	_, ok = logicalKeywords[lower]
	if ok {
		s.addToken(KeywordToken, start)
		s.emit(strings.ToUpper(lower))
		goto end
	}
	// An unreserved word directly adjacent to '(' is the shape of a
	// function invocation.
	if s.i < s.n && s.src[s.i] == '(' {
		err = NewErr(ErrFunctionCallNotAllowed,
			"identifier", word,
			"offset", start,
		)
		goto end
	}
	s.addToken(WordToken, start)
	if s.prefix != "" {
		s.emit("`" + s.prefix + "`.`" + word + "`")
		goto end
	}
	s.emit("`" + word + "`")
end:
	return err
}

// consumeOperator scans a one- or two-character symbolic operator or a
// punctuation character. The byte at s.i is known to be one of
// = < > ! ( ) , on entry.
func (s *scanState) consumeOperator() (err error) {
	start := s.i
	c := s.src[s.i]
	switch c {
	case '(', ')', ',':
		s.i++
		s.addToken(PunctToken, start)
		s.emit(string(c))
	case '=':
		s.i++
		s.addToken(OperatorToken, start)
		s.emit("=")
	case '<':
		if s.peek(1) == '=' || s.peek(1) == '>' {
			s.i += 2
		} else {
			s.i++
		}
		s.addToken(OperatorToken, start)
		s.emit(s.src[start:s.i])
	case '>':
		if s.peek(1) == '=' {
			s.i += 2
		} else {
			s.i++
		}
		s.addToken(OperatorToken, start)
		s.emit(s.src[start:s.i])
	case '!':
		if s.peek(1) != '=' {
			err = NewErr(ErrUnexpectedCharacter, "char", "!", "offset", start)
			goto end
		}
		s.i += 2
		s.addToken(OperatorToken, start)
		s.emit("!=")
	}
end:
	return err
}

// buildCondition joins the emitted tokens with single spaces; runs of
// input whitespace collapse to one space and missing whitespace between
// tokens is inserted.
func (s *scanState) buildCondition() Condition {
	return Condition(strings.Join(s.parts, " "))
}

// snippet truncates raw input for error context.
func snippet(s string) string {
	const max = 20
	if len(s) > max {
		return s[:max]
	}
	return s
}

// isWordStart checks if a byte is a valid start of an identifier (letter or underscore)
func isWordStart(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		b == '_'
}

// isWordChar checks if a byte is a valid identifier character (letter, digit, or underscore)
func isWordChar(b byte) bool {
	return isWordStart(b) ||
		(b >= '0' && b <= '9')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isSpaceChar(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isOperatorChar(b byte) bool {
	switch b {
	case '=', '<', '>', '!', '(', ')', ',':
		return true
	}
	return false
}
