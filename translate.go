package wherelex

// Option configures a call to Translate.
type Option func(*translateOpts) error

type translateOpts struct {
	prefix string
	style  ParamStyle
}

// WithTablePrefix qualifies every emitted identifier with a
// backtick-quoted table name, e.g. `t`.`name`. The prefix itself must be
// identifier-shaped.
func WithTablePrefix(prefix string) Option {
	return func(o *translateOpts) (err error) {
		if !isIdentifier(prefix) {
			err = NewErr(ErrInvalidTablePrefix, "prefix", prefix)
			goto end
		}
		o.prefix = prefix
	end:
		return err
	}
}

// WithParamStyle selects the bind-marker syntax for the target driver.
func WithParamStyle(style ParamStyle) Option {
	return func(o *translateOpts) (err error) {
		o.style, err = ParseParamStyle(string(style))
		return err
	}
}

// Translate scans a where-clause expression left to right and returns
// the sanitized condition plus the literal values extracted from it.
// Identifiers come out backtick-quoted, two-letter mnemonic operators
// come out in symbolic form, keywords come out uppercased, and every
// string or number literal is replaced by a bind marker whose value is
// appended to Args, so the condition can be spliced into a parameterized
// WHERE clause with the args passed alongside.
//
// Translation is a pure function of its input and is safe to call
// concurrently. It stops at the first lexical error and returns no
// partial result.
func Translate(expr WhereExpr, opts ...Option) (wc WhereClause, err error) {
	var state scanState
	var o translateOpts

	o.style = DefaultParamStyle
	for _, opt := range opts {
		err = opt(&o)
		if err != nil {
			goto end
		}
	}

	state = newScanState(expr, o)

	for state.i < state.n {
		c := state.src[state.i]

		switch {
		case isSpaceChar(c):
			state.i++
			continue
		case c == '"' || c == '\'' || c == '|':
			err = state.consumeString()
		case isWordStart(c):
			err = state.consumeWord()
		case isDigit(c) || c == '.' || c == '-' || c == '+':
			err = state.consumeNumber()
		case isOperatorChar(c):
			err = state.consumeOperator()
		default:
			err = NewErr(ErrUnexpectedCharacter,
				"char", string(rune(c)),
				"offset", state.i,
			)
		}
		if err != nil {
			goto end
		}
	}

	wc = NewWhereClauseWithTokens(state.buildCondition(), state.args, state.tokens)

end:
	return wc, err
}

// isIdentifier reports whether s is a whole identifier-shaped word.
func isIdentifier(s string) (is bool) {
	if s == "" {
		goto end
	}
	if !isWordStart(s[0]) {
		goto end
	}
	for i := 1; i < len(s); i++ {
		if !isWordChar(s[i]) {
			goto end
		}
	}
	is = true
end:
	return is
}
