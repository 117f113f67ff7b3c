package wherelex

// Values holds the literals extracted from the input expression, ordered
// to match the bind markers in the condition left to right. Elements are
// string for quoted literals and int64 or float64 for numbers.
type Values []any

// Strings extracts the string literals from a Values.
func (vs Values) Strings() (ss []string) {
	ss = make([]string, 0, len(vs))
	for _, v := range vs {
		s, ok := v.(string)
		if !ok {
			continue
		}
		ss = append(ss, s)
	}
	return ss
}

// Numbers extracts the numeric literals (int64 or float64) from a
// Values.
func (vs Values) Numbers() (ns []any) {
	ns = make([]any, 0, len(vs))
	for _, v := range vs {
		switch v.(type) {
		case int64, float64:
			ns = append(ns, v)
		}
	}
	return ns
}
