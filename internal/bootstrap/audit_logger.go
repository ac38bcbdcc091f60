package bootstrap

import "context"

// AuditLog is an operational event of the process itself, such as startup or
// shutdown. Leave decisions go to the leave audit trail, not here.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
