package events_test

import (
	"testing"

	"job-portal/internal/events"

	"github.com/stretchr/testify/assert"
)

func TestPeekType(t *testing.T) {
	got, err := events.PeekType([]byte(`{"event_type":"application.submitted","job_title":"Go Dev"}`))
	assert.NoError(t, err)
	assert.Equal(t, events.ApplicationSubmittedType, got)

	_, err = events.PeekType([]byte(`{"job_title":"Go Dev"}`))
	assert.ErrorIs(t, err, events.ErrMissingEventType)

	_, err = events.PeekType([]byte(`not-json`))
	assert.Error(t, err)
}
