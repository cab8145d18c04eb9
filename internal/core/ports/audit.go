package ports

import (
	"context"
	"time"
)

// Auth event actions recorded in the audit trail.
const (
	AuditActionSignup = "signup"
	AuditActionLogin  = "login"
	AuditActionLogout = "logout"
)

// AuthEvent is one auditable authentication outcome.
type AuthEvent struct {
	EmailID string
	Action  string
	Method  string
	Success bool
	Reason  string
	At      time.Time
}

// AuthEventSink accepts auth events for asynchronous recording.
// Publishing must never block the authentication path for long and must
// never fail it.
type AuthEventSink interface {
	Publish(event AuthEvent)
}

// AuditRecorder persists a single auth event.
type AuditRecorder interface {
	Record(ctx context.Context, event AuthEvent) error
}

// AuditRepository is the durable store behind the recorder.
type AuditRepository interface {
	Insert(ctx context.Context, event AuthEvent) error
}
