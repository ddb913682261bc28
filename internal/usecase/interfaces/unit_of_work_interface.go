package interfaces

import (
	"context"
	"errors"
	"marketplace_escrow/internal/domain/entities"
)

// ErrVersionConflict is returned by Commit when any entity in the write set
// was changed (or created) by someone else since it was read.
var ErrVersionConflict = errors.New("version conflict")

// WriteSet groups every entity touched by one marketplace transition.
//
// Version semantics:
//   - Version == 0: the entity is new and must not exist yet.
//   - Version > 0: the stored version must still equal Version.
//
// A successful commit stores Version+1. Commit does not mutate the set, so
// callers bump their own copies.
type WriteSet struct {
	Needs        []entities.Need
	Offers       []entities.Offer
	Orders       []entities.Order
	Disputes     []entities.Dispute
	DeletedNeeds []entities.Need
}

func (w WriteSet) Len() int {
	return len(w.Needs) + len(w.Offers) + len(w.Orders) + len(w.Disputes) + len(w.DeletedNeeds)
}

// IUnitOfWork writes a WriteSet atomically: all entities or none.
type IUnitOfWork interface {
	Commit(ctx context.Context, ws WriteSet) error
}
