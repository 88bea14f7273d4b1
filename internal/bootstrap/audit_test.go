package bootstrap_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"go-farmbook/internal/bootstrap"
	"go-farmbook/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingAudit struct {
	mu      sync.Mutex
	entries []bootstrap.AuditLog
	farms   []string
}

func (a *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.entries = append(a.entries, entry)
	a.farms = append(a.farms, contextutil.GetFarmID(ctx))
}

func (a *recordingAudit) actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.entries))
	for i, e := range a.entries {
		out[i] = e.Action
	}
	return out
}

func TestStdoutAuditLogger_CarriesFarmContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger("farmbook-api", "test", zap.New(core))

	ctx := contextutil.WithFarmID(context.Background(), "farm-1")
	ctx = contextutil.WithUserID(ctx, "user-9")
	ctx = contextutil.WithRequestID(ctx, "req-1")
	audit.Log(ctx, bootstrap.AuditLog{
		Action:  bootstrap.ActionRecordCreate,
		Message: "POST /api/v1/loans",
		Meta:    map[string]any{"status": 201},
	})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "audit", entry.LoggerName)
	fields := entry.ContextMap()
	assert.Equal(t, "farmbook-api", fields["service"])
	assert.Equal(t, "test", fields["env"])
	assert.Equal(t, bootstrap.ActionRecordCreate, fields["action"])
	assert.Equal(t, "farm-1", fields["farm_id"])
	assert.Equal(t, "user-9", fields["user_id"])
	assert.Equal(t, "req-1", fields["request_id"])
}

func TestStdoutAuditLogger_NoRequestContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	audit := bootstrap.NewStdoutAuditLogger("farmbook-api", "test", zap.New(core))

	audit.Log(context.Background(), bootstrap.AuditLog{Action: bootstrap.ActionServerStart})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.NotContains(t, fields, "farm_id")
	assert.NotContains(t, fields, "meta")
}

func TestAuditMutations(t *testing.T) {
	gin.SetMode(gin.TestMode)
	audit := &recordingAudit{}
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(contextutil.WithFarmID(c.Request.Context(), "farm-1"))
		c.Next()
	})
	r.Use(bootstrap.AuditMutations(audit))
	r.GET("/loans", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/loans", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.PUT("/loans/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.DELETE("/loans/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/loans", nil),
		httptest.NewRequest(http.MethodPost, "/loans", nil),
		httptest.NewRequest(http.MethodPut, "/loans/l-1", nil),
		httptest.NewRequest(http.MethodDelete, "/loans/l-2", nil),
	} {
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	assert.Equal(t, []string{
		bootstrap.ActionRecordCreate,
		bootstrap.ActionRecordUpdate,
		bootstrap.ActionRecordDelete,
	}, audit.actions())
	assert.Equal(t, "PUT /loans/:id", audit.entries[1].Message)
	assert.Equal(t, http.StatusNotFound, audit.entries[2].Meta["status"])
	assert.Equal(t, "/loans/l-2", audit.entries[2].Meta["path"])
	assert.Equal(t, []string{"farm-1", "farm-1", "farm-1"}, audit.farms)
}

func TestStartHTTPServer_AuditsStartAndShutdown(t *testing.T) {
	audit := &recordingAudit{}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- bootstrap.StartHTTPServer(ctx, http.NotFoundHandler(), bootstrap.ServerConfig{
			Port:            "0",
			ShutdownTimeout: time.Second,
		}, audit)
	}()

	require.Eventually(t, func() bool { return len(audit.actions()) == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{bootstrap.ActionServerStart, bootstrap.ActionServerShutdown}, audit.actions())
}
