package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tvtrackr/tracker-server-go/internal/repository"
)

// SessionSweep periodically deletes sessions past their expiry. It is an
// optional enhancement: the documented behavior is that expired sessions are
// only rejected at lookup time and accumulate until externally purged, so the
// sweep stays disabled unless an interval is configured.
type SessionSweep struct {
	sessionRepo repository.SessionRepository
	interval    time.Duration
	done        chan struct{}
}

func NewSessionSweep(sessionRepo repository.SessionRepository, interval time.Duration) *SessionSweep {
	return &SessionSweep{
		sessionRepo: sessionRepo,
		interval:    interval,
		done:        make(chan struct{}),
	}
}

func (j *SessionSweep) Start() {
	go j.run()
	log.Info().Dur("interval", j.interval).Msg("session sweep started")
}

func (j *SessionSweep) Stop() {
	close(j.done)
	log.Info().Msg("session sweep stopped")
}

func (j *SessionSweep) run() {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.sweep()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.done:
			return
		}
	}
}

func (j *SessionSweep) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	deleted, err := j.sessionRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Error().Err(err).Msg("session sweep failed")
		return
	}
	if deleted > 0 {
		log.Info().Int64("deleted", deleted).Msg("expired sessions removed")
	}
}
