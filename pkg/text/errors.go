package text

// Failure messages reported by the text operations.
const (
	MsgOnlyUnderscores   = "String contains only underscores"
	MsgMaxLengthPositive = "Max length must be a positive integer"
	MsgMaxLengthSuffix   = "Max length must be greater than the suffix length"
	MsgNoAlphanumeric    = "String must contain at least one alphanumeric character"
)

// DefaultSuffix is appended by Truncate when no suffix is given.
const DefaultSuffix = "..."
