// Package memory keeps marketplace entities in process memory. It backs
// STORAGE_DRIVER=memory (local demos) and the end-to-end use case tests, and
// applies the same version checks as the DynamoDB unit of work.
package memory

import (
	"context"
	"fmt"
	"sync"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase/interfaces"
)

type Store struct {
	mu       sync.RWMutex
	needs    map[string]entities.Need
	offers   map[string]entities.Offer
	orders   map[string]entities.Order
	disputes map[string]entities.Dispute
}

var _ interfaces.IUnitOfWork = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		needs:    map[string]entities.Need{},
		offers:   map[string]entities.Offer{},
		orders:   map[string]entities.Order{},
		disputes: map[string]entities.Dispute{},
	}
}

func (s *Store) Needs() *NeedRepository       { return &NeedRepository{s: s} }
func (s *Store) Offers() *OfferRepository     { return &OfferRepository{s: s} }
func (s *Store) Orders() *OrderRepository     { return &OrderRepository{s: s} }
func (s *Store) Disputes() *DisputeRepository { return &DisputeRepository{s: s} }

// Commit validates every version in the set before applying any write, so a
// conflict leaves the store untouched.
func (s *Store) Commit(ctx context.Context, ws interfaces.WriteSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range ws.Needs {
		if err := checkVersion("need", n.ID, n.Version, s.needs[n.ID].Version, hasKey(s.needs, n.ID)); err != nil {
			return err
		}
	}
	for _, n := range ws.DeletedNeeds {
		if err := checkVersion("need", n.ID, n.Version, s.needs[n.ID].Version, hasKey(s.needs, n.ID)); err != nil {
			return err
		}
	}
	for _, o := range ws.Offers {
		if err := checkVersion("offer", o.ID, o.Version, s.offers[o.ID].Version, hasKey(s.offers, o.ID)); err != nil {
			return err
		}
	}
	for _, o := range ws.Orders {
		if err := checkVersion("order", o.ID, o.Version, s.orders[o.ID].Version, hasKey(s.orders, o.ID)); err != nil {
			return err
		}
	}
	for _, d := range ws.Disputes {
		if err := checkVersion("dispute", d.ID, d.Version, s.disputes[d.ID].Version, hasKey(s.disputes, d.ID)); err != nil {
			return err
		}
	}

	for _, n := range ws.Needs {
		n.Version++
		s.needs[n.ID] = copyNeed(n)
	}
	for _, n := range ws.DeletedNeeds {
		delete(s.needs, n.ID)
	}
	for _, o := range ws.Offers {
		o.Version++
		s.offers[o.ID] = o
	}
	for _, o := range ws.Orders {
		o.Version++
		s.orders[o.ID] = copyOrder(o)
	}
	for _, d := range ws.Disputes {
		d.Version++
		s.disputes[d.ID] = copyDispute(d)
	}
	return nil
}

func checkVersion(kind, id string, expected, stored int64, exists bool) error {
	if id == "" {
		return fmt.Errorf("%s without id", kind)
	}
	switch {
	case expected == 0 && exists:
		return fmt.Errorf("%s %s already exists: %w", kind, id, interfaces.ErrVersionConflict)
	case expected != 0 && (!exists || stored != expected):
		return fmt.Errorf("%s %s expected version %d: %w", kind, id, expected, interfaces.ErrVersionConflict)
	}
	return nil
}

func hasKey[V any](m map[string]V, id string) bool {
	_, ok := m[id]
	return ok
}

// Copies detach pointer and slice fields so callers never alias stored state.

func copyNeed(n entities.Need) entities.Need {
	n.BudgetMin = copyFloat(n.BudgetMin)
	n.BudgetMax = copyFloat(n.BudgetMax)
	return n
}

func copyOrder(o entities.Order) entities.Order {
	o.StatusHistory = append([]entities.StatusChange(nil), o.StatusHistory...)
	o.DeliveredAt = copyTime(o.DeliveredAt)
	o.CompletedAt = copyTime(o.CompletedAt)
	o.CancelledAt = copyTime(o.CancelledAt)
	return o
}

func copyDispute(d entities.Dispute) entities.Dispute {
	d.ResolvedAt = copyTime(d.ResolvedAt)
	return d
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func copyTime[T any](v *T) *T {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
