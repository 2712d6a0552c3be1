package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Option configures the slug generation behavior.
type Option func(*config)

type config struct {
	maxLength    int
	separator    string
	replacements []string
}

func defaultConfig() *config {
	return &config{
		separator: "-",
		replacements: []string{
			"&", " and ",
			"+", " plus ",
			"@", " at ",
		},
	}
}

// MaxLength sets the maximum length of the generated slug in characters.
// Zero means no limit.
func MaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = n
	}
}

// Separator sets the separator placed between words. Default is "-".
func Separator(s string) Option {
	return func(c *config) {
		c.separator = s
	}
}

// Replace adds an old/new replacement applied before slugification.
// Replacements run in the order they were registered, after the defaults
// ("&" → "and", "+" → "plus", "@" → "at").
func Replace(old, new string) Option {
	return func(c *config) {
		c.replacements = append(c.replacements, old, " "+new+" ")
	}
}

// foldDiacritics decomposes text and drops combining marks: "é" → "e".
func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Make creates a URL-safe, lower-case ASCII slug from s. Runs of any other
// characters collapse into a single separator; leading and trailing
// separators are dropped.
func Make(s string, opts ...Option) string {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(cfg.replacements) > 0 {
		s = strings.NewReplacer(cfg.replacements...).Replace(s)
	}
	s = foldDiacritics(s)

	var b strings.Builder
	b.Grow(len(s))

	lastWasSep := true // avoid a leading separator
	count := 0
	sepLen := len([]rune(cfg.separator))

	for _, r := range s {
		if cfg.maxLength > 0 && count >= cfg.maxLength {
			break
		}

		r = unicode.ToLower(r)
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastWasSep = false
			count++
			continue
		}

		if !lastWasSep {
			if cfg.maxLength > 0 && count+sepLen > cfg.maxLength {
				break
			}
			b.WriteString(cfg.separator)
			lastWasSep = true
			count += sepLen
		}
	}

	return strings.TrimSuffix(b.String(), cfg.separator)
}

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValid reports whether s is already in canonical slug form: lower-case
// ASCII letters and digits joined by single hyphens.
func IsValid(s string) bool {
	return slugRegex.MatchString(s)
}
