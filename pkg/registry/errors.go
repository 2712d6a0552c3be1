package registry

import "errors"

var (
	ErrNoServices       = errors.New("registry: no service offerings declared")
	ErrInvalidService   = errors.New("registry: invalid service offering")
	ErrDuplicateService = errors.New("registry: duplicate service offering")
	ErrInvalidOffice    = errors.New("registry: invalid office location")
	ErrInvalidCompany   = errors.New("registry: invalid company info")
	ErrFailedToParse    = errors.New("registry: failed to parse data")
	ErrFailedToRead     = errors.New("registry: failed to read data file")
)
