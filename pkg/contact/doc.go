// Package contact defines the site's forms: the full contact form, the
// compact contact form and the single-field newsletter form.
//
// Schemas are declared with package validator. The full contact schema takes
// the list of valid service titles from the registry, so it is built at
// startup with NewSchemas and shared by every request:
//
//	schemas := contact.NewSchemas(reg)
//	svc := contact.NewService(schemas, contact.NewMailNotifier(sender, inbox, reg.CompanyInfo()))
//
//	sub, err := svc.Submit(ctx, contact.KindContact, req)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // re-render the form with verrs
//	}
//
// Accepted submissions carry normalized values; optional fields are exposed
// as validator.Optional so "not provided" is explicit.
package contact
