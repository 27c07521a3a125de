package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/dmitrymomot/safeop/pkg/result"
)

// MaxSafeInteger is the largest integer a float64 represents exactly (2^53 - 1).
const MaxSafeInteger = 1<<53 - 1

// NumberConfig is the merged numeric configuration. A nil bound is unbounded.
type NumberConfig struct {
	Min           *float64
	Max           *float64
	AllowNegative bool
	AllowZero     bool
	AllowInfinite bool
	AllowNaN      bool
}

// NumberOverride is a partial NumberConfig supplied per call.
type NumberOverride struct {
	Min           Setting[float64] `json:"min"`
	Max           Setting[float64] `json:"max"`
	AllowNegative Setting[bool]    `json:"allowNegative"`
	AllowZero     Setting[bool]    `json:"allowZero"`
	AllowInfinite Setting[bool]    `json:"allowInfinite"`
	AllowNaN      Setting[bool]    `json:"allowNaN"`
}

// DefaultNumberConfig returns the baseline numeric configuration: the safe
// integer range, negatives and zero allowed, infinities and NaN rejected.
func DefaultNumberConfig() NumberConfig {
	return NumberConfig{
		Min:           ptr(float64(-MaxSafeInteger)),
		Max:           ptr(float64(MaxSafeInteger)),
		AllowNegative: true,
		AllowZero:     true,
		AllowInfinite: false,
		AllowNaN:      false,
	}
}

// MergeNumber overlays the overrides onto the default, in order, key by key.
func MergeNumber(overrides ...NumberOverride) NumberConfig {
	cfg := DefaultNumberConfig()
	for _, o := range overrides {
		overlayPtr(&cfg.Min, o.Min)
		overlayPtr(&cfg.Max, o.Max)
		overlayBool(&cfg.AllowNegative, o.AllowNegative)
		overlayBool(&cfg.AllowZero, o.AllowZero)
		overlayBool(&cfg.AllowInfinite, o.AllowInfinite)
		overlayBool(&cfg.AllowNaN, o.AllowNaN)
	}
	return cfg
}

// Number check messages.
const (
	MsgNumberRequired = "Value is required"
	MsgNotANumber     = "Value must be a number"
	MsgNaN            = "Value cannot be NaN"
	MsgInfinite       = "Value cannot be infinite"
	MsgZero           = "Value cannot be zero"
	MsgNegative       = "Value cannot be negative"
)

// NumberPipeline returns the numeric checks in their fixed order: presence,
// type, NaN, infinity, zero, sign, minimum, maximum.
func NumberPipeline() Pipeline[NumberConfig] {
	return Pipeline[NumberConfig]{
		{Name: "presence", Run: numberPresence},
		{Name: "type", Run: numberType},
		{Name: "nan", Run: numberNaN},
		{Name: "infinity", Run: numberInfinity},
		{Name: "zero", Run: numberZero},
		{Name: "sign", Run: numberSign},
		{Name: "min", Run: numberMin},
		{Name: "max", Run: numberMax},
	}
}

// ValidateNumber runs the numeric pipeline and returns the value as float64.
func ValidateNumber(value any, cfg NumberConfig) (float64, error) {
	if err := NumberPipeline().Validate(value, cfg); err != nil {
		return 0, err
	}
	n, _ := ToFloat(value)
	return n, nil
}

// ToFloat converts any Go numeric type or json.Number to float64.
func ToFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// FormatFloat renders n as the shortest decimal text that parses back to n.
func FormatFloat(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func numberPresence(value any, _ NumberConfig) Verdict {
	if value == nil {
		return Reject(result.Presence(MsgNumberRequired))
	}
	return Next()
}

func numberType(value any, _ NumberConfig) Verdict {
	if _, ok := ToFloat(value); !ok {
		return Reject(result.TypeMismatch(MsgNotANumber))
	}
	return Next()
}

func numberNaN(value any, cfg NumberConfig) Verdict {
	n, _ := ToFloat(value)
	if !math.IsNaN(n) {
		return Next()
	}
	if cfg.AllowNaN {
		return Accept()
	}
	return Reject(result.Policy(MsgNaN))
}

func numberInfinity(value any, cfg NumberConfig) Verdict {
	n, _ := ToFloat(value)
	if !math.IsInf(n, 0) {
		return Next()
	}
	if cfg.AllowInfinite {
		return Accept()
	}
	return Reject(result.Policy(MsgInfinite))
}

func numberZero(value any, cfg NumberConfig) Verdict {
	n, _ := ToFloat(value)
	if n == 0 && !cfg.AllowZero {
		return Reject(result.Policy(MsgZero))
	}
	return Next()
}

func numberSign(value any, cfg NumberConfig) Verdict {
	n, _ := ToFloat(value)
	if n < 0 && !cfg.AllowNegative {
		return Reject(result.Policy(MsgNegative))
	}
	return Next()
}

func numberMin(value any, cfg NumberConfig) Verdict {
	n, _ := ToFloat(value)
	if cfg.Min != nil && n < *cfg.Min {
		return Reject(result.Policy(fmt.Sprintf("Value must be at least %s", FormatFloat(*cfg.Min))))
	}
	return Next()
}

func numberMax(value any, cfg NumberConfig) Verdict {
	n, _ := ToFloat(value)
	if cfg.Max != nil && n > *cfg.Max {
		return Reject(result.Policy(fmt.Sprintf("Value must be at most %s", FormatFloat(*cfg.Max))))
	}
	return Next()
}
