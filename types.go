package wherelex

// WhereExpr is the raw, untrusted where-clause text supplied by a user
// or a query builder, e.g. `(taxyear eq 2012) and (name like |Frank%|)`.
type WhereExpr string

// Condition is a sanitized SQL fragment safe to splice into a
// parameterized WHERE clause: every identifier is backtick-quoted and
// every literal has been replaced by a bind marker.
type Condition string
