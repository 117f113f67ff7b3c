package wherelex

// mnemonicOps maps the two-letter comparison mnemonics to their symbolic
// SQL form. The lookup happens only after a whole word has been scanned
// and is case-insensitive, so "gt" is an operator but "gtx" is an
// identifier.
var mnemonicOps = map[string]string{
	"eq": "=",
	"ne": "<>",
	"lt": "<",
	"le": "<=",
	"ge": ">=",
	"gt": ">",
}

// logicalKeywords are the reserved words emitted uppercased instead of
// backtick-quoted. This is the entire reserved set; any other word is an
// identifier.
var logicalKeywords = map[string]struct{}{
	"and":     {},
	"or":      {},
	"not":     {},
	"in":      {},
	"is":      {},
	"null":    {},
	"like":    {},
	"between": {},
}
