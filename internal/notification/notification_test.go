package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"job-portal/internal/events"
	"job-portal/internal/notification"
	notificationMock "job-portal/internal/notification/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRenderWelcome(t *testing.T) {
	msg, err := notification.RenderWelcome("ana@example.com", "Ana", "employee")

	assert.NoError(t, err)
	assert.Equal(t, "ana@example.com", msg.To)
	assert.Equal(t, "Welcome to Our Platform", msg.Subject)
	assert.Equal(t, "Hi Ana, thank you for signing up as a employee! We are excited to have you on board.", msg.Text)
	assert.Contains(t, msg.HTML, "Welcome, Ana!")
}

func TestRenderApplicationSubmitted_EscapesHTML(t *testing.T) {
	msg, err := notification.RenderApplicationSubmitted("rec@example.com", "Go <Dev>", "Ana")

	assert.NoError(t, err)
	assert.Equal(t, "New Application for Go <Dev>", msg.Subject)
	assert.Equal(t, "Ana has applied for the position of Go <Dev>.", msg.Text)
	assert.Contains(t, msg.HTML, "Go &lt;Dev&gt;")
}

func TestHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("application submitted goes to the recruiter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := notificationMock.NewMockMailer(ctrl)
		h := notification.NewHandler(mailer)

		payload, _ := json.Marshal(events.ApplicationSubmittedEvent{
			EventType:      events.ApplicationSubmittedType,
			RecruiterEmail: "rec@example.com",
			JobTitle:       "Backend Engineer",
			ApplicantName:  "Ana",
		})

		mailer.EXPECT().
			Send(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg notification.Message) error {
				assert.Equal(t, "rec@example.com", msg.To)
				assert.Equal(t, "New Application for Backend Engineer", msg.Subject)
				return nil
			})

		assert.NoError(t, h.Handle(ctx, events.ApplicationSubmittedType, payload))
	})

	t.Run("user registered sends welcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := notificationMock.NewMockMailer(ctrl)
		h := notification.NewHandler(mailer)

		payload, _ := json.Marshal(events.UserRegisteredEvent{EventType: events.UserRegisteredType, Email: "ana@example.com", Name: "Ana", Role: "employee"})
		mailer.EXPECT().Send(ctx, gomock.Any()).Return(nil)

		assert.NoError(t, h.Handle(ctx, events.UserRegisteredType, payload))
	})

	t.Run("mailer failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mailer := notificationMock.NewMockMailer(ctrl)
		h := notification.NewHandler(mailer)

		payload, _ := json.Marshal(events.UserRegisteredEvent{EventType: events.UserRegisteredType, Email: "ana@example.com"})
		mailer.EXPECT().Send(ctx, gomock.Any()).Return(errors.New("smtp down"))

		assert.ErrorContains(t, h.Handle(ctx, events.UserRegisteredType, payload), "smtp down")
	})

	t.Run("unknown type is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := notification.NewHandler(notificationMock.NewMockMailer(ctrl))

		assert.NoError(t, h.Handle(ctx, "job.archived", []byte(`{}`)))
	})

	t.Run("missing recipient is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := notification.NewHandler(notificationMock.NewMockMailer(ctrl))

		assert.NoError(t, h.Handle(ctx, events.UserRegisteredType, []byte(`{"event_type":"user.registered"}`)))
	})
}
