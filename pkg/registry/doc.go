// Package registry holds the agency's static reference data: company info,
// office locations and the ordered list of service offerings.
//
// The data doubles as page content and as a validation constraint: the
// contact form only accepts a service type equal to one of ServiceTitles.
//
// A Registry is built once at startup, from the YAML compiled into the binary
// or from an override file, and passed by reference to its consumers:
//
//	reg, err := registry.FromConfig(cfg.Registry)
//	if err != nil {
//	    return err
//	}
//	schema := contact.NewContactSchema(reg)
//
// Registry values are immutable and safe for concurrent use.
package registry
