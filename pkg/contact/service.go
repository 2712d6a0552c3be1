package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/agencysite/pkg/logger"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// Notifier hands accepted submissions to whoever answers them.
type Notifier interface {
	NotifyContact(ctx context.Context, s Submission) error
	NotifySubscription(ctx context.Context, s Subscription) error
}

// Service validates form submissions and forwards accepted ones.
type Service struct {
	schemas  Schemas
	notifier Notifier
	log      *slog.Logger
	now      func() time.Time
}

type ServiceOption func(*Service)

func WithLogger(l *slog.Logger) ServiceOption {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock overrides the time source used to stamp submissions.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(schemas Schemas, notifier Notifier, opts ...ServiceOption) *Service {
	s := &Service{
		schemas:  schemas,
		notifier: notifier,
		log:      slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schemas returns the schemas the service validates against.
func (s *Service) Schemas() Schemas {
	return s.schemas
}

// Validate runs the schema of kind over rec.
func (s *Service) Validate(kind Kind, rec validator.Record) (validator.Result, error) {
	schema, err := s.schemas.For(kind)
	if err != nil {
		return validator.Result{}, err
	}
	return validator.ValidateForm(schema, rec), nil
}

// ValidateField runs a single field of the kind's schema.
func (s *Service) ValidateField(kind Kind, field, value string) (string, error) {
	schema, err := s.schemas.For(kind)
	if err != nil {
		return "", err
	}
	return validator.ValidateField(schema, field, value), nil
}

// Submit validates req against the contact or compact schema and notifies on
// success. Rejected input is returned as validator.ValidationErrors.
func (s *Service) Submit(ctx context.Context, kind Kind, req Request) (Submission, error) {
	if kind != KindContact && kind != KindCompact {
		return Submission{}, ErrUnknownForm
	}

	res, err := s.Validate(kind, req.Record())
	if err != nil {
		return Submission{}, err
	}
	if !res.Valid() {
		s.log.DebugContext(ctx, "contact submission rejected",
			logger.Form(string(kind)),
			logger.Fields(res.Errors().Fields()),
		)
		return Submission{}, res.Err()
	}

	sub := NewSubmission(kind, res.Values(), s.now())
	if err := s.notifier.NotifyContact(ctx, sub); err != nil {
		s.log.ErrorContext(ctx, "failed to deliver contact submission",
			logger.Form(string(kind)),
			logger.SubmissionID(sub.ID),
			logger.Error(err),
		)
		return Submission{}, errors.Join(ErrDeliveryFailed, err)
	}

	s.log.InfoContext(ctx, "contact submission accepted",
		logger.Form(string(kind)),
		logger.SubmissionID(sub.ID),
	)
	return sub, nil
}

// Subscribe validates a newsletter sign-up and notifies on success.
func (s *Service) Subscribe(ctx context.Context, req NewsletterRequest) (Subscription, error) {
	res, err := s.Validate(KindNewsletter, req.Record())
	if err != nil {
		return Subscription{}, err
	}
	if !res.Valid() {
		return Subscription{}, res.Err()
	}

	sub := NewSubscription(res.Values(), s.now())
	if err := s.notifier.NotifySubscription(ctx, sub); err != nil {
		s.log.ErrorContext(ctx, "failed to deliver newsletter subscription",
			logger.SubmissionID(sub.ID),
			logger.Error(err),
		)
		return Subscription{}, errors.Join(ErrDeliveryFailed, err)
	}

	s.log.InfoContext(ctx, "newsletter subscription accepted", logger.SubmissionID(sub.ID))
	return sub, nil
}
