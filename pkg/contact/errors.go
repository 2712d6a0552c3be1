package contact

import "errors"

var (
	ErrUnknownForm    = errors.New("contact: unknown form")
	ErrDeliveryFailed = errors.New("contact: failed to deliver submission")
)
