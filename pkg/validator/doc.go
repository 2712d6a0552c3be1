// Package validator provides a small declarative rule-chain engine for
// validating form submissions.
//
// A Rule is a predicate paired with the message reported when it fails.
// Rules are grouped per field into a FieldRule chain, and fields are grouped
// into a Schema. Evaluation is pure: no I/O, no hidden state, so a Schema can
// be shared between goroutines and the same input always produces the same
// Result.
//
// # Evaluation order
//
// Every chain is evaluated in a fixed order and stops at the first failure:
//
//  1. Required  – non-empty after trimming
//  2. MinLen    – minimum length in characters
//  3. MaxLen    – maximum length in characters
//  4. Matches, Email, OneOf, Func – pattern or predicate checks
//
// This keeps "field is required" ahead of a pattern mismatch on an empty
// value. NewSchema panics when a chain declares rules out of this order.
//
// Fields without a Required rule are optional: an empty value passes and the
// remaining rules are skipped.
//
// # Usage
//
//	signup := validator.NewSchema("signup",
//	    validator.Field("email",
//	        validator.Required("Email is required"),
//	        validator.MaxLen(254, ""),
//	        validator.Email(""),
//	    ).Trim(),
//	    validator.Field("company", validator.MaxLen(100, "")).Trim(),
//	)
//
//	// on blur
//	msg := validator.ValidateField(signup, "email", input)
//
//	// on submit
//	res := validator.ValidateForm(signup, validator.Record{"email": input})
//	if !res.Valid() {
//	    for _, e := range res.Errors() {
//	        // e.Field, e.Message
//	    }
//	}
//
// # Error Handling
//
// Invalid input is a regular return value. Result.Err exposes the field
// errors as a ValidationErrors value so they can also travel through error
// returns and be recovered with ExtractValidationErrors.
package validator
