package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/vedicwisdom/funnel-backend/pkg/enums"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
	"github.com/vedicwisdom/funnel-backend/pkg/redis"
)

const lockScope = "lead"

type keyedLocker interface {
	AcquireLock(ctx context.Context, scope, id string, opts redis.LockOptions) (func(context.Context) error, error)
}

// Service wraps the ledger repository with per-lead serialization and the
// swallow-and-log policy for tracking failures.
type Service interface {
	// Track appends a fresh INITIATED row; failures are logged, never returned.
	Track(ctx context.Context, lead Lead)
	// Append writes a new ledger row.
	Append(ctx context.Context, lead Lead) error
	// Update patches the matching row under a per-lead mutex. Returns false
	// when no row matches.
	Update(ctx context.Context, leadID string, patch Patch) (bool, error)
	// Annotate records a non-fatal error on the lead without changing status.
	Annotate(ctx context.Context, leadID, message string)
	// SetStatus transitions the lead, optionally recording an error message.
	SetStatus(ctx context.Context, leadID string, status enums.LeadStatus, errText string)
}

type service struct {
	repo   Repository
	locker keyedLocker
	logg   *logger.Logger
}

// NewService builds the lead ledger service.
func NewService(repo Repository, locker keyedLocker, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("leads repository required")
	}
	return &service{repo: repo, locker: locker, logg: logg}, nil
}

func (s *service) Track(ctx context.Context, lead Lead) {
	if lead.Status == "" {
		lead.Status = enums.LeadStatusInitiated
	}
	if err := s.repo.Append(ctx, lead); err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithLeadID(ctx, lead.LeadID), "ledger track failed", err)
	}
}

func (s *service) Append(ctx context.Context, lead Lead) error {
	return s.repo.Append(ctx, lead)
}

func (s *service) Update(ctx context.Context, leadID string, patch Patch) (bool, error) {
	if leadID == "" {
		return false, nil
	}

	release := s.lock(ctx, leadID)
	if release != nil {
		defer func() {
			if err := release(ctx); err != nil && s.logg != nil {
				s.logg.Warn(s.logg.WithLeadID(ctx, leadID), "releasing lead lock failed")
			}
		}()
	}

	return s.repo.Update(ctx, leadID, patch)
}

func (s *service) Annotate(ctx context.Context, leadID, message string) {
	if _, err := s.Update(ctx, leadID, Patch{Error: message}); err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithLeadID(ctx, leadID), "ledger annotate failed", err)
	}
}

func (s *service) SetStatus(ctx context.Context, leadID string, status enums.LeadStatus, errText string) {
	if _, err := s.Update(ctx, leadID, Patch{Status: status, Error: errText}); err != nil && s.logg != nil {
		s.logg.Error(s.logg.WithLeadID(ctx, leadID), "ledger status update failed", err)
	}
}

// lock serializes the read-modify-write cycle per lead. When the lock
// cannot be taken the write proceeds unserialized: the ledger is a tracking
// store, and availability wins over strict ordering.
func (s *service) lock(ctx context.Context, leadID string) func(context.Context) error {
	if s.locker == nil {
		return nil
	}
	release, err := s.locker.AcquireLock(ctx, lockScope, leadID, redis.LockOptions{
		TTL:        15 * time.Second,
		RetryDelay: 100 * time.Millisecond,
		MaxRetries: 30,
	})
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithLeadID(ctx, leadID), "lead lock unavailable, writing unserialized")
		}
		return nil
	}
	return release
}
