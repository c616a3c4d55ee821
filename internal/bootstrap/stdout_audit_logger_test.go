package bootstrap_test

import (
	"context"
	"testing"

	"job-portal/internal/bootstrap"
	"job-portal/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestStdoutAuditLogger_Log(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger(zap.New(core))

	ctx := contextutil.WithRequestID(context.Background(), "rid-42")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:  "USER_DEACTIVATED",
		ActorID: "admin-1",
		Message: "user deactivated",
		Meta:    map[string]any{"user_id": "u-1"},
	})

	entries := logs.FilterMessage("audit event").All()
	assert.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "USER_DEACTIVATED", fields["action"])
	assert.Equal(t, "admin-1", fields["actor_id"])
	assert.Equal(t, "rid-42", fields["request_id"])
	assert.Equal(t, "audit", entries[0].LoggerName)
}
