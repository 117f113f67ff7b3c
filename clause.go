package wherelex

var _ Clause = (*WhereClause)(nil)

// Clause is what downstream query code needs from a translated
// expression: the sanitized condition, the bind arguments, and the
// classified token stream for diagnostics.
type Clause interface {
	SQLCondition() Condition
	BindArgs() Values
	Tokens() Tokens
}

// WhereClause is the result of translating a where expression. Condition
// is safe to splice into a WHERE clause; Args are passed alongside as
// bind parameters, positionally matching the markers left to right.
type WhereClause struct {
	Condition Condition
	Args      Values
	tokens    Tokens
}

func NewWhereClause(cond Condition, args Values) WhereClause {
	if args == nil {
		args = make(Values, 0)
	}
	return WhereClause{
		Condition: cond,
		Args:      args,
	}
}

func NewWhereClauseWithTokens(cond Condition, args Values, tokens Tokens) WhereClause {
	if args == nil {
		args = make(Values, 0)
	}
	if tokens == nil {
		tokens = make(Tokens, 0)
	}
	return WhereClause{
		Condition: cond,
		Args:      args,
		tokens:    tokens,
	}
}

func (wc WhereClause) SQLCondition() Condition {
	return wc.Condition
}

func (wc WhereClause) BindArgs() Values {
	return wc.Args
}

func (wc WhereClause) Tokens() Tokens {
	return wc.tokens
}

// ToSql satisfies squirrel.Sqlizer so a translated clause drops directly
// into builder chains, e.g. sq.Select("id").From("t").Where(wc). There
// is no error path; the clause was validated during translation.
func (wc WhereClause) ToSql() (string, []any, error) {
	return string(wc.Condition), wc.Args, nil
}
