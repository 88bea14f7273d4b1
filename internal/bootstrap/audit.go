package bootstrap

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	ActionServerStart    = "SERVER_START"
	ActionServerShutdown = "SERVER_SHUTDOWN"
	ActionRecordCreate   = "RECORD_CREATE"
	ActionRecordUpdate   = "RECORD_UPDATE"
	ActionRecordDelete   = "RECORD_DELETE"
)

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}

// AuditMutations records one entry per write request once the handler has
// run. Reads pass through untouched.
func AuditMutations(audit AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		action, ok := mutationAction(c.Request.Method)
		if !ok {
			c.Next()
			return
		}

		c.Next()

		audit.Log(c.Request.Context(), AuditLog{
			Action:  action,
			Message: c.Request.Method + " " + c.FullPath(),
			Meta: map[string]any{
				"path":   c.Request.URL.Path,
				"status": c.Writer.Status(),
			},
		})
	}
}

func mutationAction(method string) (string, bool) {
	switch method {
	case http.MethodPost:
		return ActionRecordCreate, true
	case http.MethodPut, http.MethodPatch:
		return ActionRecordUpdate, true
	case http.MethodDelete:
		return ActionRecordDelete, true
	default:
		return "", false
	}
}
