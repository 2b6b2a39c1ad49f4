package auditlog

import (
	"context"
	"time"

	"github.com/raviWithTraversia/alliance-API/internal/infrastructure/logger"
)

// saveTimeout bounds a single background save so a slow store cannot pile up
// goroutines indefinitely.
const saveTimeout = 5 * time.Second

// Recorder saves audit records in the background. Save failures are logged
// and otherwise swallowed.
type Recorder struct {
	store Store
	log   *logger.Logger
}

// NewRecorder creates a Recorder over the given store.
func NewRecorder(store Store, log *logger.Logger) *Recorder {
	if log == nil {
		log = logger.Nop()
	}
	return &Recorder{store: store, log: log}
}

// Record persists rec asynchronously. It never blocks the caller and never
// returns an error.
func (r *Recorder) Record(rec Record) {
	if r == nil || r.store == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := r.store.Save(ctx, rec); err != nil {
			r.log.Warn().
				Err(err).
				Str("service", rec.ServiceName).
				Str("unique_key", rec.UniqueKey).
				Msg("Failed to persist vendor audit record")
		}
	}()
}
