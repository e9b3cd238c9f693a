package history

import (
	"context"
	"sync"
	"time"

	"screencheck/internal/recordstore"
	"screencheck/pkg/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// RecordStore is the slice of the record store client the history service
// needs.
type RecordStore interface {
	ListUploads(ctx context.Context, opts recordstore.ListOptions) ([]types.UploadRecord, error)
	ListValidations(ctx context.Context, opts recordstore.ListOptions) ([]types.ValidationRecord, error)
	UploadByID(ctx context.Context, uploadID string) (*types.UploadRecord, error)
	DeleteUpload(ctx context.Context, uploadID string) error
	DeleteValidation(ctx context.Context, comparisonID string) error
}

// Service owns the presented session list. The list is replaced after a
// completed load and edited after a completed delete; overlapping loads are
// collapsed into one fetch.
type Service struct {
	store      RecordStore
	logger     *logrus.Logger
	window     time.Duration
	fetchLimit int

	group    singleflight.Group
	mu       sync.Mutex
	sessions []types.Session
}

func NewService(store RecordStore, logger *logrus.Logger, window time.Duration, fetchLimit int) *Service {
	if window <= 0 {
		window = DefaultCorrelationWindow
	}
	return &Service{
		store:      store,
		logger:     logger,
		window:     window,
		fetchLimit: fetchLimit,
	}
}

// Load fetches both feeds, rebuilds the session list and replaces the
// presented list. Concurrent callers share a single in-flight load.
func (s *Service) Load(ctx context.Context) ([]types.Session, error) {
	result, err, _ := s.group.Do("load", func() (any, error) {
		uploads, validations, err := s.fetchFeeds(ctx)
		if err != nil {
			return nil, err
		}

		sessions, diag := BuildSessions(uploads, validations, s.window)
		s.logDiagnostics(diag)

		s.mu.Lock()
		s.sessions = sessions
		s.mu.Unlock()

		return sessions, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]types.Session), nil
}

// Sessions returns a snapshot of the presented list.
func (s *Service) Sessions() []types.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// UploadDetail fetches a single upload record from the store.
func (s *Service) UploadDetail(ctx context.Context, uploadID string) (*types.UploadRecord, error) {
	return s.store.UploadByID(ctx, uploadID)
}

// Stats fetches the upload feed and summarizes it.
func (s *Service) Stats(ctx context.Context) (*UploadStats, error) {
	uploads, err := s.store.ListUploads(ctx, recordstore.ListOptions{Limit: s.fetchLimit})
	if err != nil {
		return nil, &FeedFetchError{Feed: "uploads", Err: err}
	}
	stats := SummarizeUploads(uploads)
	return &stats, nil
}

// fetchFeeds retrieves both feeds concurrently. Either failure aborts the
// whole load with a single FeedFetchError.
func (s *Service) fetchFeeds(ctx context.Context) ([]types.UploadRecord, []types.ValidationRecord, error) {
	var uploads []types.UploadRecord
	var validations []types.ValidationRecord

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		uploads, err = s.store.ListUploads(ctx, recordstore.ListOptions{Limit: s.fetchLimit})
		if err != nil {
			return &FeedFetchError{Feed: "uploads", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		validations, err = s.store.ListValidations(ctx, recordstore.ListOptions{Limit: s.fetchLimit})
		if err != nil {
			return &FeedFetchError{Feed: "validations", Err: err}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return uploads, validations, nil
}

func (s *Service) logDiagnostics(diag Diagnostics) {
	for _, id := range diag.DroppedValidations {
		s.logger.WithField("comparison_id", id).Warn("validation resolved no uploads, dropped from history")
	}
	for _, id := range diag.MultiClaimedUploads {
		s.logger.WithField("upload_id", id).Warn("upload claimed by multiple validations")
	}
}
