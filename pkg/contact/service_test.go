package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/agencysite/pkg/contact"
	"github.com/dmitrymomot/agencysite/pkg/logger"
	"github.com/dmitrymomot/agencysite/pkg/registry"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyContact(ctx context.Context, s contact.Submission) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockNotifier) NotifySubscription(ctx context.Context, s contact.Subscription) error {
	return m.Called(ctx, s).Error(0)
}

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newService(n contact.Notifier) *contact.Service {
	return contact.NewService(
		contact.NewSchemas(registry.Default()),
		n,
		contact.WithLogger(logger.Discard()),
		contact.WithClock(func() time.Time { return fixedNow }),
	)
}

func TestService_Submit(t *testing.T) {
	t.Parallel()

	t.Run("accepted submission is normalized and delivered", func(t *testing.T) {
		t.Parallel()
		n := &mockNotifier{}
		n.On("NotifyContact", mock.Anything, mock.MatchedBy(func(s contact.Submission) bool {
			return s.Name == "Jane Doe" && s.Email == "jane@x.com"
		})).Return(nil).Once()

		sub, err := newService(n).Submit(context.Background(), contact.KindContact, contact.Request{
			Name:        "  Jane   Doe ",
			Email:       " jane@x.com ",
			ServiceType: "Branding & Identity",
			Message:     "We need a full rebrand for our retail chain.",
		})
		require.NoError(t, err)

		assert.NotEqual(t, "", sub.ID.String())
		assert.Equal(t, contact.KindContact, sub.Kind)
		assert.Equal(t, fixedNow, sub.ReceivedAt)
		assert.False(t, sub.Company.IsPresent())
		service, ok := sub.ServiceType.Get()
		assert.True(t, ok)
		assert.Equal(t, "Branding & Identity", service)
		n.AssertExpectations(t)
	})

	t.Run("rejected submission is not delivered", func(t *testing.T) {
		t.Parallel()
		n := &mockNotifier{}

		_, err := newService(n).Submit(context.Background(), contact.KindContact, contact.Request{
			Email:       "bad",
			ServiceType: "Nonsense",
			Message:     "hi",
		})
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"name", "email", "serviceType", "message"}, verrs.Fields())
		n.AssertNotCalled(t, "NotifyContact", mock.Anything, mock.Anything)
	})

	t.Run("compact form checks service type", func(t *testing.T) {
		t.Parallel()
		n := &mockNotifier{}

		_, err := newService(n).Submit(context.Background(), contact.KindCompact, contact.Request{
			Name:        "Al",
			Email:       "al@agency.io",
			ServiceType: "Nonsense",
			Message:     "Call me back please.",
		})
		require.True(t, validator.IsValidationError(err))
		assert.Equal(t, []string{"serviceType"}, validator.ExtractValidationErrors(err).Fields())
		n.AssertNotCalled(t, "NotifyContact", mock.Anything, mock.Anything)
	})

	t.Run("compact form keeps service type", func(t *testing.T) {
		t.Parallel()
		n := &mockNotifier{}
		n.On("NotifyContact", mock.Anything, mock.Anything).Return(nil).Once()

		sub, err := newService(n).Submit(context.Background(), contact.KindCompact, contact.Request{
			Name:        "Al",
			Email:       "al@agency.io",
			ServiceType: "Event Design & Planning",
			Message:     "Call me back please.",
		})
		require.NoError(t, err)
		assert.Equal(t, contact.KindCompact, sub.Kind)
		got, ok := sub.ServiceType.Get()
		require.True(t, ok)
		assert.Equal(t, "Event Design & Planning", got)
	})

	t.Run("delivery failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("smtp down")
		n := &mockNotifier{}
		n.On("NotifyContact", mock.Anything, mock.Anything).Return(boom)

		_, err := newService(n).Submit(context.Background(), contact.KindCompact, contact.Request{
			Name:    "Al",
			Email:   "al@agency.io",
			Message: "Call me back please.",
		})
		assert.ErrorIs(t, err, contact.ErrDeliveryFailed)
		assert.ErrorIs(t, err, boom)
		assert.False(t, validator.IsValidationError(err))
	})

	t.Run("newsletter kind is not a contact form", func(t *testing.T) {
		t.Parallel()
		_, err := newService(&mockNotifier{}).Submit(context.Background(), contact.KindNewsletter, contact.Request{})
		assert.ErrorIs(t, err, contact.ErrUnknownForm)
	})
}

func TestService_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		n := &mockNotifier{}
		n.On("NotifySubscription", mock.Anything, mock.MatchedBy(func(s contact.Subscription) bool {
			return s.Email == "a@b.co" && s.ReceivedAt.Equal(fixedNow)
		})).Return(nil).Once()

		sub, err := newService(n).Subscribe(context.Background(), contact.NewsletterRequest{Email: " a@b.co "})
		require.NoError(t, err)
		assert.Equal(t, "a@b.co", sub.Email)
		n.AssertExpectations(t)
	})

	t.Run("rejected", func(t *testing.T) {
		t.Parallel()
		n := &mockNotifier{}

		_, err := newService(n).Subscribe(context.Background(), contact.NewsletterRequest{Email: "not-an-email"})
		require.True(t, validator.IsValidationError(err))
		assert.Equal(t, contact.MsgEmailInvalid, validator.ExtractValidationErrors(err).Get("email"))
		n.AssertNotCalled(t, "NotifySubscription", mock.Anything, mock.Anything)
	})

	t.Run("delivery failure", func(t *testing.T) {
		t.Parallel()
		n := &mockNotifier{}
		n.On("NotifySubscription", mock.Anything, mock.Anything).Return(errors.New("down"))

		_, err := newService(n).Subscribe(context.Background(), contact.NewsletterRequest{Email: "a@b.co"})
		assert.ErrorIs(t, err, contact.ErrDeliveryFailed)
	})
}

func TestService_Validate(t *testing.T) {
	t.Parallel()
	svc := newService(&mockNotifier{})

	res, err := svc.Validate(contact.KindNewsletter, validator.Record{"email": "a@b.co"})
	require.NoError(t, err)
	assert.True(t, res.Valid())

	msg, err := svc.ValidateField(contact.KindContact, contact.FieldName, "J")
	require.NoError(t, err)
	assert.Equal(t, contact.MsgNameTooShort, msg)

	_, err = svc.Validate("survey", nil)
	assert.ErrorIs(t, err, contact.ErrUnknownForm)
	_, err = svc.ValidateField("survey", "name", "")
	assert.ErrorIs(t, err, contact.ErrUnknownForm)
}
