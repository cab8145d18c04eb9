package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

type stubAuditRepo struct {
	inserted []ports.AuthEvent
	err      error
}

func (r *stubAuditRepo) Insert(_ context.Context, event ports.AuthEvent) error {
	if r.err != nil {
		return r.err
	}
	r.inserted = append(r.inserted, event)
	return nil
}

func TestAuditService_Record(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo)

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	err := svc.Record(context.Background(), ports.AuthEvent{
		EmailID: "a@x.com",
		Action:  ports.AuditActionLogin,
		Method:  "password",
		Success: true,
		At:      at,
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if len(repo.inserted) != 1 || !repo.inserted[0].At.Equal(at) {
		t.Fatalf("unexpected inserted events: %+v", repo.inserted)
	}
}

func TestAuditService_DefaultsTimestamp(t *testing.T) {
	repo := &stubAuditRepo{}
	svc := NewAuditService(repo)

	if err := svc.Record(context.Background(), ports.AuthEvent{EmailID: "a@x.com", Action: ports.AuditActionLogout}); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if repo.inserted[0].At.IsZero() {
		t.Fatalf("expected a defaulted timestamp")
	}
}

func TestAuditService_RepoError(t *testing.T) {
	svc := NewAuditService(&stubAuditRepo{err: errors.New("disk full")})

	if err := svc.Record(context.Background(), ports.AuthEvent{EmailID: "a@x.com"}); err == nil {
		t.Fatalf("expected error from repository")
	}
}
