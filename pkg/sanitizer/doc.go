// Package sanitizer provides small string transforms used to normalize user
// input before it is validated, displayed or forwarded.
//
// Transforms have the shape func(string) string so they compose with
// Compose and plug directly into validator.FieldRule.Normalize:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveControlChars,
//	    sanitizer.NormalizeUnicode,
//	    sanitizer.Trim,
//	)
//	validator.Field("name", rules...).Normalize(clean)
//
// StripHTML relies on bluemonday's strict policy; NormalizeUnicode uses
// golang.org/x/text for NFC normalization.
package sanitizer
