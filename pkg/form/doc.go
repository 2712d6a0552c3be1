// Package form holds the interactive state of a single form: values,
// touched fields, per-field errors and the submission status.
//
// Change clears a field's error as the visitor types, Blur validates one
// field, Submit validates everything and touches every field, and
// VisibleError hides errors of fields the visitor has not reached yet.
// Begin and Complete bracket a submission so a double click cannot send the
// same form twice.
package form
