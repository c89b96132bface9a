// Package journal holds the client-side sync engine: an in-memory ordered
// list of entries that is the source of truth for rendering, flushed to the
// backend after a debounced quiet period and reloaded from it on demand.
package journal

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/daybook/internal/client/api"
	"github.com/dmitrijs2005/daybook/internal/client/debounce"
	"github.com/dmitrijs2005/daybook/internal/client/models"
	"github.com/dmitrijs2005/daybook/internal/logging"
)

const flushTimeout = 30 * time.Second

type Service struct {
	mu      sync.Mutex
	entries []models.Entry
	userID  int64

	client  api.Client
	flusher *debounce.Debouncer
	logger  logging.Logger

	// test seam for the clock used to stamp new entries
	now func() time.Time
}

func NewService(client api.Client, flushDelay time.Duration, logger logging.Logger) *Service {
	return &Service{
		client:  client,
		flusher: debounce.New(flushDelay),
		logger:  logger.With("module", "journal"),
		now:     time.Now,
	}
}

// SetSession records the account identity used to stamp locally authored
// entries. Zero means unauthenticated.
func (s *Service) SetSession(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userID = userID
}

// Append adds a locally authored entry stamped with the current instant and
// restarts the flush timer. It never blocks on the network. Two appends
// within the same timestamp second share a dedup key; the later one will be
// dropped by the server (observed contract of the upload path).
func (s *Service) Append(text string) models.Entry {
	s.mu.Lock()
	e := models.Entry{
		Timestamp: models.NewTimestamp(s.now()),
		Text:      text,
		UserID:    s.userID,
	}
	s.entries = append(s.entries, e)
	s.mu.Unlock()

	s.flusher.Schedule(s.backgroundFlush)

	return e
}

// Entries returns a copy of the in-memory sequence in append order.
func (s *Service) Entries() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]models.Entry, len(s.entries))
	copy(result, s.entries)
	return result
}

// Load fetches the full ordered log and replaces the in-memory sequence with
// the server's view. This is a destructive refresh: local entries appended
// after the last successful flush are lost if Load races a pending edit. The
// short flush cadence makes that window small, not impossible.
func (s *Service) Load(ctx context.Context) error {

	list, err := s.client.ListEntries(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.entries = list
	s.mu.Unlock()

	s.logger.Info(ctx, "journal loaded", "entries", len(list))

	return nil
}

// Flush uploads the entire current sequence. The upload path is
// insert-if-absent, so re-sending already persisted entries is safe; only
// rows the server actually inserted come back. Local state is never touched,
// success or failure.
func (s *Service) Flush(ctx context.Context) error {

	s.mu.Lock()
	snapshot := make([]models.Entry, len(s.entries))
	copy(snapshot, s.entries)
	s.mu.Unlock()

	if len(snapshot) == 0 {
		return nil
	}

	inserted, err := s.client.AppendBatch(ctx, snapshot)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "journal flushed", "uploaded", len(snapshot), "inserted", len(inserted))

	return nil
}

// backgroundFlush is the debounce callback. Failures are logged and left for
// the next quiet period; in-memory state stays intact.
func (s *Service) backgroundFlush() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := s.Flush(ctx); err != nil {
		s.logger.Warn(ctx, "background flush failed", "error", err.Error())
	}
}

// Reset drops the in-memory sequence and any pending flush (logout path).
func (s *Service) Reset() {
	s.flusher.Stop()

	s.mu.Lock()
	s.entries = nil
	s.userID = 0
	s.mu.Unlock()
}
