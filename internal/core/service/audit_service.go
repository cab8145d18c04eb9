package service

import (
	"context"
	"fmt"
	"time"

	"github.com/playgroundlabs/playground-api/internal/api/metrics"
	"github.com/playgroundlabs/playground-api/internal/core/ports"
)

// AuditService persists auth events to the audit repository. It sits behind
// the queue dispatcher, so a single Record call handles exactly one event.
type AuditService struct {
	repo ports.AuditRepository
}

func NewAuditService(repo ports.AuditRepository) *AuditService {
	return &AuditService{repo: repo}
}

func (s *AuditService) Record(ctx context.Context, event ports.AuthEvent) error {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		metrics.AuditEventsTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("record auth event: %w", err)
	}

	metrics.AuditEventsTotal.WithLabelValues("ok").Inc()
	return nil
}
