// Package wherelex translates a simplified, MySQL-flavored "where clause"
// expression into a sanitized SQL condition plus the ordered list of
// literal values found in it, ready for parameterized execution. It is a
// lexical analyzer, not a parser: an expression that translates cleanly
// may still be rejected by the SQL engine, but the translated condition
// contains no raw user text and so allows no injection.
//
// Every identifier is backtick-quoted in the output so the engine cannot
// interpret it as a reserved word, every string or number literal is
// replaced by a bind marker, and function-call syntax is rejected
// outright. Two-letter mnemonic comparison operators (gt for >, le for
// <=, and so on) are accepted for input ergonomics and rewritten to
// their symbolic form.
//
// Strings may be quoted with ", ', or |, and the only way to get a quote
// character into a value is to delimit the string with a different quote
// character; there is no escape mechanism. The pipe is included to ease
// automatic quoting from query builders, since it rarely appears in text.
//
// # Examples
//
// database/sql: https://pkg.go.dev/database/sql
//
//	wc, err := wherelex.Translate(`age gt 21 and name like |Frank%|`)
//	if err != nil {
//	  return nil, err
//	}
//	q := fmt.Sprintf("select * from people where %s", wc.Condition)
//	rows, err := db.Query(q, wc.Args...)
//
// squirrel: https://github.com/Masterminds/squirrel
//
//	wc, err := wherelex.Translate(`region eq "north"`)
//	if err != nil {
//	  return nil, err
//	}
//	q, args, err := sq.Select("id").From("people").Where(wc).ToSql()
//
// Comparisons can be combined with and, or, not, and parentheses;
// in, is, null, like, and between are recognized as keywords. The
// reserved word set is enumerated in keywords.go and nothing else is
// treated specially.
package wherelex
