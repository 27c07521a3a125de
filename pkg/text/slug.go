package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	xtransform "golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/safeop/pkg/result"
)

// SlugOption configures Slugify.
type SlugOption func(*slugConfig)

type slugConfig struct {
	separator string
	maxLength int
}

func defaultSlugConfig() *slugConfig {
	return &slugConfig{
		separator: "-",
		maxLength: 0, // no limit
	}
}

// SlugSeparator sets the word separator. Default is "-".
func SlugSeparator(sep string) SlugOption {
	return func(c *slugConfig) {
		c.separator = sep
	}
}

// SlugMaxLength caps the slug at n runes, cutting on a word boundary where
// possible. Zero means no limit.
func SlugMaxLength(n int) SlugOption {
	return func(c *slugConfig) {
		c.maxLength = n
	}
}

// Letters that do not decompose under NFD.
var foldReplacer = strings.NewReplacer(
	"ß", "ss", "æ", "ae", "Æ", "AE", "œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O", "ł", "l", "Ł", "L", "đ", "d", "Đ", "D",
)

// foldASCII strips combining marks so that "é" becomes "e".
func foldASCII(s string) string {
	s = foldReplacer.Replace(s)
	t := xtransform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := xtransform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify renders value as a lowercase URL-safe slug: "Héllo, World!" becomes
// "hello-world". Runes outside ASCII letters and digits become separators.
func Slugify(value any, overrides ...Override) result.Outcome[string] {
	return SlugifyWith(value, nil, overrides...)
}

// SlugifyWith is Slugify with slug options.
func SlugifyWith(value any, opts []SlugOption, overrides ...Override) result.Outcome[string] {
	return transform(value, overrides, func(s string) (string, error) {
		return makeSlug(s, opts...), nil
	})
}

func makeSlug(s string, opts ...SlugOption) string {
	cfg := defaultSlugConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	sepLen := len([]rune(cfg.separator))

	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true // no leading separator
	count := 0
	for _, r := range strings.ToLower(foldASCII(s)) {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			count++
			continue
		}
		if lastWasSep {
			continue
		}
		if cfg.maxLength > 0 && count+sepLen > cfg.maxLength {
			break
		}
		b.WriteString(cfg.separator)
		lastWasSep = true
		count += sepLen
	}

	return strings.TrimSuffix(b.String(), cfg.separator)
}
