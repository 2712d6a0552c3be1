// Package slug turns human-readable titles into URL-safe identifiers.
//
// Titles are folded to ASCII (diacritics are removed through Unicode
// decomposition), lower-cased, and runs of other characters collapse into a
// single separator. A few symbols common in service names are spelled out
// before slugification, so "Branding & Identity" becomes
// "branding-and-identity".
//
//	slug.Make("Web Design & Development")   // "web-design-and-development"
//	slug.Make("Café résumé", slug.MaxLength(4)) // "cafe"
//	slug.IsValid("motion-design")           // true
//
// Non-Latin scripts have no ASCII folding and are dropped; pass an explicit
// identifier for such titles.
package slug
