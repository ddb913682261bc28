package memory

import (
	"context"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase/interfaces"
)

type NeedRepository struct{ s *Store }

var _ interfaces.INeedRepository = (*NeedRepository)(nil)

func (r *NeedRepository) GetByID(_ context.Context, id string) (entities.Need, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return copyNeed(r.s.needs[id]), nil
}

func (r *NeedRepository) List(_ context.Context, filter entities.NeedFilter) ([]entities.Need, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Need, 0)
	for _, n := range r.s.needs {
		if filter.Matches(n) {
			out = append(out, copyNeed(n))
		}
	}
	return out, nil
}

func (r *NeedRepository) ListByBuyerID(ctx context.Context, buyerID string) ([]entities.Need, error) {
	return r.List(ctx, entities.NeedFilter{BuyerID: buyerID})
}

type OfferRepository struct{ s *Store }

var _ interfaces.IOfferRepository = (*OfferRepository)(nil)

func (r *OfferRepository) GetByID(_ context.Context, id string) (entities.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.offers[id], nil
}

func (r *OfferRepository) ListByNeedID(_ context.Context, needID string) ([]entities.Offer, error) {
	return r.filter(func(o entities.Offer) bool { return o.NeedID == needID }), nil
}

func (r *OfferRepository) ListBySellerID(_ context.Context, sellerID string) ([]entities.Offer, error) {
	return r.filter(func(o entities.Offer) bool { return o.SellerID == sellerID }), nil
}

func (r *OfferRepository) filter(keep func(entities.Offer) bool) []entities.Offer {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Offer, 0)
	for _, o := range r.s.offers {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out
}

type OrderRepository struct{ s *Store }

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) GetByID(_ context.Context, id string) (entities.Order, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	return copyOrder(o), nil
}

func (r *OrderRepository) ListByBuyerID(_ context.Context, buyerID string) ([]entities.Order, error) {
	return r.filter(func(o entities.Order) bool { return o.BuyerID == buyerID }), nil
}

func (r *OrderRepository) ListBySellerID(_ context.Context, sellerID string) ([]entities.Order, error) {
	return r.filter(func(o entities.Order) bool { return o.SellerID == sellerID }), nil
}

func (r *OrderRepository) filter(keep func(entities.Order) bool) []entities.Order {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Order, 0)
	for _, o := range r.s.orders {
		if keep(o) {
			out = append(out, copyOrder(o))
		}
	}
	return out
}

type DisputeRepository struct{ s *Store }

var _ interfaces.IDisputeRepository = (*DisputeRepository)(nil)

func (r *DisputeRepository) GetByID(_ context.Context, id string) (entities.Dispute, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return copyDispute(r.s.disputes[id]), nil
}

func (r *DisputeRepository) ListByOrderID(_ context.Context, orderID string) ([]entities.Dispute, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Dispute, 0)
	for _, d := range r.s.disputes {
		if d.OrderID == orderID {
			out = append(out, copyDispute(d))
		}
	}
	return out, nil
}
