package numeric

// Failure messages reported by the numeric operations.
const (
	MsgMinGreaterThanMax   = "Minimum value cannot be greater than maximum value"
	MsgDecimalsNonNegative = "Decimals must be a non-negative integer"
	MsgDecimalsRange       = "Decimals must be an integer between 0 and 20"
	MsgNonNegativeInteger  = "Input must be a non-negative integer"
	MsgPositiveInteger     = "Input must be a positive integer"
	MsgIntegersRequired    = "Both values must be integers"
	MsgLCMZero             = "LCM is undefined when either value is zero"
	MsgDivideByZero        = "Cannot divide by zero"
	MsgTotalZero           = "Total cannot be zero"
	MsgFactorialCap        = "Factorial is not representable for inputs greater than 170"
	MsgFibonacciCap        = "Fibonacci is not representable for inputs greater than 78"
	MsgNotRepresentable    = "Result is too large to be represented"
	MsgUndefinedResult     = "Result is not a number"
	MsgArrayRequired       = "Input is required"
	MsgNotAnArray          = "Input must be an array"
	MsgEmptyArray          = "Array cannot be empty"
	MsgInvalidNumberText   = "String is not a valid number"
	MsgNumberTextRange     = "Number is out of range"
)

// Domain caps keeping results within float64 / safe-integer precision.
const (
	MaxFactorialInput = 170
	MaxFibonacciInput = 78
	MaxFixedDecimals  = 20
)
