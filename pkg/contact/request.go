package contact

import (
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// Request is a raw contact form submission as posted by the full or the
// compact form. The compact form leaves Company and ServiceType empty.
type Request struct {
	Name        string `form:"name" json:"name"`
	Email       string `form:"email" json:"email"`
	Company     string `form:"company" json:"company"`
	ServiceType string `form:"serviceType" json:"serviceType"`
	Message     string `form:"message" json:"message"`
}

// Record converts r to the shape consumed by the validator.
func (r Request) Record() validator.Record {
	return validator.Record{
		FieldName:        r.Name,
		FieldEmail:       r.Email,
		FieldCompany:     r.Company,
		FieldServiceType: r.ServiceType,
		FieldMessage:     r.Message,
	}
}

// NewsletterRequest is a raw newsletter/CTA sign-up.
type NewsletterRequest struct {
	Email string `form:"email" json:"email"`
}

func (r NewsletterRequest) Record() validator.Record {
	return validator.Record{FieldEmail: r.Email}
}

// Submission is an accepted contact request with normalized values.
type Submission struct {
	ID          uuid.UUID                  `json:"id"`
	Kind        Kind                       `json:"kind"`
	Name        string                     `json:"name"`
	Email       string                     `json:"email"`
	Company     validator.Optional[string] `json:"company"`
	ServiceType validator.Optional[string] `json:"service_type"`
	Message     string                     `json:"message"`
	ReceivedAt  time.Time                  `json:"received_at"`
}

// NewSubmission builds a Submission from the values of an accepted result.
func NewSubmission(kind Kind, values validator.Record, receivedAt time.Time) Submission {
	return Submission{
		ID:          uuid.New(),
		Kind:        kind,
		Name:        values.Get(FieldName),
		Email:       values.Get(FieldEmail),
		Company:     validator.OptionalString(values.Get(FieldCompany)),
		ServiceType: validator.OptionalString(values.Get(FieldServiceType)),
		Message:     values.Get(FieldMessage),
		ReceivedAt:  receivedAt,
	}
}

// Subscription is an accepted newsletter sign-up.
type Subscription struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	ReceivedAt time.Time `json:"received_at"`
}

func NewSubscription(values validator.Record, receivedAt time.Time) Subscription {
	return Subscription{
		ID:         uuid.New(),
		Email:      values.Get(FieldEmail),
		ReceivedAt: receivedAt,
	}
}
