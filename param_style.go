package wherelex

import (
	"fmt"
	"strings"
)

// ParamStyle selects the bind-marker syntax emitted for literals, per
// the target driver's placeholder convention.
type ParamStyle string

const (
	QuestionParamStyle ParamStyle = "question" // ?        MySQL, SQLite
	DollarParamStyle   ParamStyle = "dollar"   // $1, $2   PostgreSQL
	AtParamStyle       ParamStyle = "at"       // @p1, @p2 SQL Server
)

func ParseParamStyle(s string) (ps ParamStyle, err error) {
	if s == "" {
		ps = DefaultParamStyle
		goto end
	}
	ps = ParamStyle(strings.ToLower(s))
	switch ps {
	case QuestionParamStyle, DollarParamStyle, AtParamStyle:

		// Nothing to do
	default:
		err = NewErr(ErrInvalidParamStyle, "param_style", s)
		ps = ""
	}
end:
	return ps, err
}

// placeholder renders the n-th (1-based) bind marker for the style.
func (ps ParamStyle) placeholder(n int) string {
	switch ps {
	case DollarParamStyle:
		return fmt.Sprintf("$%d", n)
	case AtParamStyle:
		return fmt.Sprintf("@p%d", n)
	}
	return "?"
}
