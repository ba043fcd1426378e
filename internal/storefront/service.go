package storefront

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service hands out sessions and ends the idle ones.
type Service struct {
	repo     Repository
	catalog  Catalog
	log      *zap.Logger
	recorder Recorder
	ttl      time.Duration
	now      func() time.Time
}

func NewService(repo Repository, cat Catalog, log *zap.Logger, recorder Recorder, ttl time.Duration) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		repo:     repo,
		catalog:  cat,
		log:      log,
		recorder: recorder,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Catalog exposes the catalog sessions are built on.
func (s *Service) Catalog() Catalog {
	return s.catalog
}

// Open returns the session for id, or a new empty session when id is empty
// or no longer known. created reports which case applied.
func (s *Service) Open(id string) (sess *Session, created bool, err error) {
	if id != "" {
		sess, err = s.repo.Get(id)
		if err == nil {
			return sess, false, nil
		}
		if !errors.Is(err, ErrSessionNotFound) {
			return nil, false, fmt.Errorf("get session: %w", err)
		}
	}

	sess = NewSession(uuid.NewString(), s.catalog, s.log, s.recorder)
	sess.now = s.now
	sess.lastSeen = s.now()
	if err := s.repo.Save(sess); err != nil {
		return nil, false, fmt.Errorf("save session: %w", err)
	}
	s.recorder.SetActiveSessions(s.repo.Count())
	s.log.Info("session started", zap.String("session_id", sess.ID()))

	return sess, true, nil
}

// Sweep ends every session idle longer than the TTL.
func (s *Service) Sweep() int {
	removed := s.repo.Sweep(s.now().Add(-s.ttl))
	s.recorder.SetActiveSessions(s.repo.Count())
	if removed > 0 {
		s.log.Info("idle sessions ended", zap.Int("count", removed))
	}
	return removed
}

// RunJanitor sweeps idle sessions every interval until ctx is done.
func (s *Service) RunJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
