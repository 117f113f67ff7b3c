package wherelex

const (
	// DefaultParamStyle specifies the bind-marker syntax used when no
	// WithParamStyle option is given.
	DefaultParamStyle = QuestionParamStyle
)
