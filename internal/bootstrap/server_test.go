package bootstrap_test

import (
	"context"
	"testing"
	"time"

	"go-leaveai/internal/bootstrap"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAuditLogger struct {
	actions chan string
}

func (r *recordingAuditLogger) Log(_ context.Context, log bootstrap.AuditLog) {
	r.actions <- log.Action
}

func TestRunHTTPServer_ShutsDownOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	audit := &recordingAuditLogger{actions: make(chan string, 2)}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.RunHTTPServer(ctx, gin.New(), bootstrap.ServerConfig{Port: "0"}, audit)
	}()

	assert.Equal(t, "SERVER_STARTED", <-audit.actions)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, "SERVER_SHUTDOWN", <-audit.actions)
}
