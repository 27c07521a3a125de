package validator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/safeop/pkg/result"
)

// DefaultMaxLength bounds string inputs unless overridden.
const DefaultMaxLength = 10000

// TextConfig is the merged textual configuration. A nil MaxLength is unbounded.
type TextConfig struct {
	MaxLength           *int
	AllowWhitespaceOnly bool
	AllowControlChars   bool
}

// TextOverride is a partial TextConfig supplied per call.
type TextOverride struct {
	MaxLength           Setting[int]  `json:"maxLength"`
	AllowWhitespaceOnly Setting[bool] `json:"allowWhitespaceOnly"`
	AllowControlChars   Setting[bool] `json:"allowControlChars"`
}

// DefaultTextConfig returns the baseline textual configuration.
func DefaultTextConfig() TextConfig {
	return TextConfig{
		MaxLength:           ptr(DefaultMaxLength),
		AllowWhitespaceOnly: false,
		AllowControlChars:   false,
	}
}

// MergeText overlays the overrides onto the default, in order, key by key.
func MergeText(overrides ...TextOverride) TextConfig {
	cfg := DefaultTextConfig()
	for _, o := range overrides {
		overlayPtr(&cfg.MaxLength, o.MaxLength)
		overlayBool(&cfg.AllowWhitespaceOnly, o.AllowWhitespaceOnly)
		overlayBool(&cfg.AllowControlChars, o.AllowControlChars)
	}
	return cfg
}

// Text check messages.
const (
	MsgTextRequired   = "Input is required"
	MsgNotAString     = "Input must be a string"
	MsgEmptyString    = "String cannot be empty"
	MsgWhitespaceOnly = "String cannot contain only whitespace"
	MsgControlChars   = "String cannot contain control characters"
)

// TextPipeline returns the textual checks in their fixed order: presence,
// type, emptiness, whitespace-only, maximum length, control characters.
func TextPipeline() Pipeline[TextConfig] {
	return Pipeline[TextConfig]{
		{Name: "presence", Run: textPresence},
		{Name: "type", Run: textType},
		{Name: "empty", Run: textEmpty},
		{Name: "whitespace", Run: textWhitespace},
		{Name: "max_length", Run: textMaxLength},
		{Name: "control_chars", Run: textControlChars},
	}
}

// ValidateText runs the textual pipeline and returns the value as a string.
func ValidateText(value any, cfg TextConfig) (string, error) {
	if err := TextPipeline().Validate(value, cfg); err != nil {
		return "", err
	}
	s, _ := value.(string)
	return s, nil
}

// HasControlChars reports control characters other than tab, newline and carriage return.
func HasControlChars(s string) bool {
	for _, r := range s {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

func textPresence(value any, _ TextConfig) Verdict {
	if value == nil {
		return Reject(result.Presence(MsgTextRequired))
	}
	return Next()
}

func textType(value any, _ TextConfig) Verdict {
	if _, ok := value.(string); !ok {
		return Reject(result.TypeMismatch(MsgNotAString))
	}
	return Next()
}

func textEmpty(value any, _ TextConfig) Verdict {
	if value.(string) == "" {
		return Reject(result.Policy(MsgEmptyString))
	}
	return Next()
}

func textWhitespace(value any, cfg TextConfig) Verdict {
	if !cfg.AllowWhitespaceOnly && strings.TrimSpace(value.(string)) == "" {
		return Reject(result.Policy(MsgWhitespaceOnly))
	}
	return Next()
}

func textMaxLength(value any, cfg TextConfig) Verdict {
	if cfg.MaxLength != nil && utf8.RuneCountInString(value.(string)) > *cfg.MaxLength {
		return Reject(result.Policy(fmt.Sprintf("String cannot exceed %d characters", *cfg.MaxLength)))
	}
	return Next()
}

func textControlChars(value any, cfg TextConfig) Verdict {
	if !cfg.AllowControlChars && HasControlChars(value.(string)) {
		return Reject(result.Policy(MsgControlChars))
	}
	return Next()
}
