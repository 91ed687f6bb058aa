package leads

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vedicwisdom/funnel-backend/pkg/enums"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
	"github.com/vedicwisdom/funnel-backend/pkg/redis"
)

type stubRepo struct {
	appended  []Lead
	appendErr error
	updated   map[string]Patch
	found     bool
	updateErr error
}

func (s *stubRepo) Append(_ context.Context, lead Lead) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.appended = append(s.appended, lead)
	return nil
}

func (s *stubRepo) Update(_ context.Context, leadID string, patch Patch) (bool, error) {
	if s.updated == nil {
		s.updated = map[string]Patch{}
	}
	s.updated[leadID] = patch
	return s.found, s.updateErr
}

type stubLocker struct {
	acquired int
	released int
	err      error
}

func (s *stubLocker) AcquireLock(_ context.Context, _, _ string, _ redis.LockOptions) (func(context.Context) error, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.acquired++
	return func(context.Context) error {
		s.released++
		return nil
	}, nil
}

func discardLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: nopWriter{}})
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestTrackSwallowsAppendFailure(t *testing.T) {
	repo := &stubRepo{appendErr: errors.New("sheet down")}
	svc, err := NewService(repo, nil, discardLogger())
	require.NoError(t, err)

	svc.Track(context.Background(), Lead{LeadID: "lead-1", Name: "Test"})
}

func TestTrackDefaultsStatusToInitiated(t *testing.T) {
	repo := &stubRepo{}
	svc, err := NewService(repo, nil, discardLogger())
	require.NoError(t, err)

	svc.Track(context.Background(), Lead{LeadID: "lead-1"})
	require.Len(t, repo.appended, 1)
	assert.Equal(t, enums.LeadStatusInitiated, repo.appended[0].Status)
}

func TestUpdateHoldsAndReleasesLock(t *testing.T) {
	repo := &stubRepo{found: true}
	locker := &stubLocker{}
	svc, err := NewService(repo, locker, discardLogger())
	require.NoError(t, err)

	found, err := svc.Update(context.Background(), "lead-1", Patch{Status: enums.LeadStatusPaid})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, locker.acquired)
	assert.Equal(t, 1, locker.released)
}

func TestUpdateProceedsWhenLockUnavailable(t *testing.T) {
	repo := &stubRepo{found: true}
	locker := &stubLocker{err: redis.ErrLockNotAcquired}
	svc, err := NewService(repo, locker, discardLogger())
	require.NoError(t, err)

	found, err := svc.Update(context.Background(), "lead-1", Patch{Status: enums.LeadStatusPaid})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, repo.updated, "lead-1")
}

func TestUpdateEmptyLeadIDIsNoop(t *testing.T) {
	repo := &stubRepo{}
	svc, err := NewService(repo, nil, discardLogger())
	require.NoError(t, err)

	found, err := svc.Update(context.Background(), "", Patch{Status: enums.LeadStatusPaid})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, repo.updated)
}

func TestSetStatusPatchesStatusAndError(t *testing.T) {
	repo := &stubRepo{found: true}
	svc, err := NewService(repo, nil, discardLogger())
	require.NoError(t, err)

	svc.SetStatus(context.Background(), "lead-1", enums.LeadStatusFailed, "render exploded")
	patch := repo.updated["lead-1"]
	assert.Equal(t, enums.LeadStatusFailed, patch.Status)
	assert.Equal(t, "render exploded", patch.Error)
}
