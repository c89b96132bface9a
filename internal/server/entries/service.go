package entries

import (
	"context"

	"github.com/dmitrijs2005/daybook/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the caller's full entry log ordered by timestamp ascending.
// There is no pagination; the client replaces its local state with the result.
func (s *Service) List(ctx context.Context, userID int64) ([]Entry, error) {

	result, err := s.repo.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrStorage
	}

	return result, nil
}

// AppendBatch persists a batch of client-authored entries with
// insert-if-absent semantics, so a retried upload never creates duplicates.
// An empty batch or an entry without a timestamp is a validation error.
func (s *Service) AppendBatch(ctx context.Context, userID int64, batch []NewEntry) ([]Entry, error) {

	if len(batch) == 0 {
		return nil, common.ErrValidation
	}
	for _, e := range batch {
		if e.Timestamp == "" {
			return nil, common.ErrValidation
		}
	}

	inserted, err := s.repo.CreateBatch(ctx, userID, batch)
	if err != nil {
		return nil, common.ErrStorage
	}

	return inserted, nil
}
