package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"marketplace_escrow/internal/adapter/persistence/memory"
	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/idempotency"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/infrastructure/payments"
	"marketplace_escrow/internal/usecase/interfaces"
)

type marketplace struct {
	store    *memory.Store
	locks    *idempotency.MemoryStore
	needs    *NeedUseCase
	offers   *OfferUseCase
	orders   *OrderUseCase
	disputes *DisputeUseCase
}

type countingGateway struct {
	interfaces.IPaymentGateway
	mu    sync.Mutex
	calls int
}

func (g *countingGateway) CreatePayment(ctx context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	return g.IPaymentGateway.CreatePayment(ctx, payload)
}

// interleavedNeeds runs during the first need read, after the state has been
// read but before the caller acts on it.
type interleavedNeeds struct {
	interfaces.INeedRepository
	during func()
	fired  bool
}

func (r *interleavedNeeds) GetByID(ctx context.Context, id string) (entities.Need, error) {
	n, err := r.INeedRepository.GetByID(ctx, id)
	if !r.fired && r.during != nil {
		r.fired = true
		r.during()
	}
	return n, err
}

func newMarketplace(gateway interfaces.IPaymentGateway) *marketplace {
	log := logger.NewNop()
	store := memory.NewStore()
	locks := idempotency.NewMemoryStore()
	return &marketplace{
		store:    store,
		locks:    locks,
		needs:    NewNeedUseCase(store.Needs(), store.Offers(), store, nil, log),
		offers:   NewOfferUseCase(store.Needs(), store.Offers(), store, nil, log),
		orders:   NewOrderUseCase(store.Needs(), store.Offers(), store.Orders(), store, gateway, locks, nil, log),
		disputes: NewDisputeUseCase(store.Needs(), store.Orders(), store.Disputes(), store, nil, log),
	}
}

func mustNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// postAndAccept walks a need through an offer of price and its acceptance.
func (m *marketplace) postAndAccept(t *testing.T, price float64) (entities.Need, entities.Offer) {
	t.Helper()
	ctx := context.Background()
	need, err := m.needs.Create(ctx, testBuyer, NeedInput{Title: "Fix sink", Category: "plumbing"})
	mustNoErr(t, err)
	offer, err := m.offers.Create(ctx, testSeller, OfferInput{NeedID: need.ID, Price: price, DeliveryTime: "2 days"})
	mustNoErr(t, err)
	offer, err = m.offers.Accept(ctx, testBuyer, offer.ID)
	mustNoErr(t, err)
	return need, offer
}

func TestMarketplace_HappyPath(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace(payments.NewMockGateway(logger.NewNop()))
	need, offer := m.postAndAccept(t, 200)

	order, created, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"})
	mustNoErr(t, err)
	if !created || order.PlatformFee != 10 || order.SellerEarnings != 190 {
		t.Fatalf("unexpected order: %+v", order)
	}

	_, err = m.orders.UpdateStatus(ctx, testSeller, order.ID, entities.OrderStatusInProgress, "")
	mustNoErr(t, err)
	_, err = m.orders.UpdateStatus(ctx, testSeller, order.ID, entities.OrderStatusDelivered, "done")
	mustNoErr(t, err)

	got, err := m.needs.GetByID(ctx, need.ID)
	mustNoErr(t, err)
	if got.Status != entities.NeedStatusDelivered || got.OrderID != order.ID {
		t.Fatalf("need must follow the order, got %+v", got)
	}

	order, err = m.orders.ConfirmDelivery(ctx, testBuyer, order.ID)
	mustNoErr(t, err)
	if order.Status != entities.OrderStatusCompleted || len(order.StatusHistory) != 4 {
		t.Fatalf("unexpected order: %+v", order)
	}
	got, _ = m.needs.GetByID(ctx, need.ID)
	if got.Status != entities.NeedStatusCompleted {
		t.Fatalf("expected completed need, got %s", got.Status)
	}

	sellerOrders, err := m.orders.ListMine(ctx, testSeller, OrderRoleSeller)
	mustNoErr(t, err)
	if len(sellerOrders) != 1 || sellerOrders[0].ID != order.ID {
		t.Fatalf("unexpected seller orders: %+v", sellerOrders)
	}
}

func TestMarketplace_CounterOfferFlow(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace(payments.NewMockGateway(logger.NewNop()))

	need, err := m.needs.Create(ctx, testBuyer, NeedInput{Title: "Logo", Category: "design"})
	mustNoErr(t, err)
	offer, err := m.offers.Create(ctx, testSeller, OfferInput{NeedID: need.ID, Price: 500})
	mustNoErr(t, err)

	counter, err := m.offers.Counter(ctx, testBuyer, offer.ID, 400, "too pricey")
	mustNoErr(t, err)

	if _, err := m.offers.Accept(ctx, testBuyer, counter.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("buyer must not accept own counter, got %v", err)
	}
	if _, err := m.offers.Counter(ctx, testSeller, counter.ID, 450, ""); !errors.Is(err, ErrCannotCounterCounter) {
		t.Fatalf("expected ErrCannotCounterCounter, got %v", err)
	}

	accepted, err := m.offers.Accept(ctx, testSeller, counter.ID)
	mustNoErr(t, err)
	if accepted.Status != entities.OfferStatusAccepted {
		t.Fatalf("unexpected counter: %+v", accepted)
	}

	original, err := m.offers.GetByID(ctx, testSeller, offer.ID)
	mustNoErr(t, err)
	if original.Status != entities.OfferStatusCountered || original.CounterOfferID != counter.ID {
		t.Fatalf("unexpected original: %+v", original)
	}

	order, _, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: counter.ID, PaymentMethod: "pix"})
	mustNoErr(t, err)
	if order.Amount != 400 || order.WorkflowType != entities.WorkflowRemote {
		t.Fatalf("unexpected order: %+v", order)
	}

	listed, err := m.offers.ListByNeedID(ctx, testBuyer, need.ID)
	mustNoErr(t, err)
	if len(listed) != 2 || listed[0].ID != counter.ID {
		t.Fatalf("accepted offer must be listed first, got %+v", listed)
	}
}

func TestMarketplace_CancelReopensNeed(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace(payments.NewMockGateway(logger.NewNop()))
	need, offer := m.postAndAccept(t, 120)

	order, _, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"})
	mustNoErr(t, err)
	_, err = m.orders.UpdateStatus(ctx, testBuyer, order.ID, entities.OrderStatusCancelled, "changed my mind")
	mustNoErr(t, err)

	got, err := m.needs.GetByID(ctx, need.ID)
	mustNoErr(t, err)
	if got.Status != entities.NeedStatusOpen || got.AcceptedOfferID != "" || got.OrderID != "" {
		t.Fatalf("need must be open again, got %+v", got)
	}

	other := entities.Actor{ID: "seller-2", Name: "Val"}
	second, err := m.offers.Create(ctx, other, OfferInput{NeedID: need.ID, Price: 110})
	mustNoErr(t, err)
	_, err = m.offers.Accept(ctx, testBuyer, second.ID)
	mustNoErr(t, err)

	listed, err := m.store.Offers().ListByNeedID(ctx, need.ID)
	mustNoErr(t, err)
	accepted := 0
	for _, o := range listed {
		if o.Status == entities.OfferStatusAccepted {
			accepted++
			if o.ID != second.ID {
				t.Fatalf("only the new offer may be accepted, got %s", o.ID)
			}
		}
	}
	if accepted != 1 {
		t.Fatalf("expected exactly one accepted offer, got %d in %+v", accepted, listed)
	}

	first, err := m.store.Offers().GetByID(ctx, offer.ID)
	mustNoErr(t, err)
	if first.Status != entities.OfferStatusDeclined || first.OrderID != order.ID {
		t.Fatalf("paid offer must be declined and keep its order, got %+v", first)
	}

	replayed, created, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"})
	mustNoErr(t, err)
	if created || replayed.ID != order.ID || replayed.Status != entities.OrderStatusCancelled {
		t.Fatalf("retry on the cancelled order's offer must replay it, got %+v (created=%v)", replayed, created)
	}
}

func TestMarketplace_DeleteNeedDeclinesPendingOffers(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace(payments.NewMockGateway(logger.NewNop()))

	need, err := m.needs.Create(ctx, testBuyer, NeedInput{Title: "Paint fence", Category: "painting"})
	mustNoErr(t, err)
	_, err = m.offers.Create(ctx, testSeller, OfferInput{NeedID: need.ID, Price: 75})
	mustNoErr(t, err)

	mustNoErr(t, m.needs.Delete(ctx, testBuyer, need.ID))

	sent, err := m.offers.ListSent(ctx, testSeller)
	mustNoErr(t, err)
	if len(sent) != 1 || sent[0].Status != entities.OfferStatusDeclined {
		t.Fatalf("offer on a deleted need must be declined, got %+v", sent)
	}
	if _, err := m.offers.Accept(ctx, testBuyer, sent[0].ID); err == nil {
		t.Fatalf("offer on a deleted need must not be acceptable")
	}
}

func TestMarketplace_DisputeAndRefund(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace(payments.NewMockGateway(logger.NewNop()))
	need, offer := m.postAndAccept(t, 80)

	order, _, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"})
	mustNoErr(t, err)
	_, err = m.orders.UpdateStatus(ctx, testSeller, order.ID, entities.OrderStatusInProgress, "")
	mustNoErr(t, err)
	_, err = m.orders.UpdateStatus(ctx, testSeller, order.ID, entities.OrderStatusDelivered, "")
	mustNoErr(t, err)

	d, err := m.disputes.Create(ctx, testBuyer, order.ID, "never arrived")
	mustNoErr(t, err)

	if _, err := m.orders.ConfirmDelivery(ctx, testBuyer, order.ID); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("disputed order cannot be confirmed, got %v", err)
	}

	_, err = m.disputes.Resolve(ctx, testAdmin, d.ID, entities.DisputeOutcomeRefund, "no tracking")
	mustNoErr(t, err)

	order, err = m.orders.GetByID(ctx, testBuyer, order.ID)
	mustNoErr(t, err)
	got, _ := m.needs.GetByID(ctx, need.ID)
	if order.Status != entities.OrderStatusCancelled || got.Status != entities.NeedStatusClosed {
		t.Fatalf("refund must cancel the order and close the need: order=%s need=%s", order.Status, got.Status)
	}

	if _, err := m.disputes.Resolve(ctx, testAdmin, d.ID, entities.DisputeOutcomeRelease, ""); !errors.Is(err, ErrDisputeNotPending) {
		t.Fatalf("expected ErrDisputeNotPending, got %v", err)
	}
	disputes, err := m.disputes.ListByOrderID(ctx, testSeller, order.ID)
	mustNoErr(t, err)
	if len(disputes) != 1 || disputes[0].Outcome != entities.DisputeOutcomeRefund {
		t.Fatalf("unexpected disputes: %+v", disputes)
	}
}

func TestMarketplace_OrderIdempotency(t *testing.T) {
	ctx := context.Background()

	t.Run("replay charges once", func(t *testing.T) {
		gw := &countingGateway{IPaymentGateway: payments.NewMockGateway(logger.NewNop())}
		m := newMarketplace(gw)
		_, offer := m.postAndAccept(t, 60)

		first, created, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"})
		mustNoErr(t, err)
		second, replayCreated, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"})
		mustNoErr(t, err)

		if !created || replayCreated || first.ID != second.ID {
			t.Fatalf("expected replay of %s, got %s (created=%v)", first.ID, second.ID, replayCreated)
		}
		if gw.calls != 1 {
			t.Fatalf("expected one capture, got %d", gw.calls)
		}
	})

	t.Run("held reservation", func(t *testing.T) {
		m := newMarketplace(payments.NewMockGateway(logger.NewNop()))
		_, offer := m.postAndAccept(t, 60)

		_, ok, err := m.locks.Reserve(ctx, "order-create:"+offer.ID, defaultOrderLockTTL)
		if err != nil || !ok {
			t.Fatalf("could not take the lock: %v", err)
		}
		if _, _, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"}); !errors.Is(err, ErrOrderCreationInProgress) {
			t.Fatalf("expected ErrOrderCreationInProgress, got %v", err)
		}
	})

	t.Run("order committed between read and lock is replayed", func(t *testing.T) {
		gw := &countingGateway{IPaymentGateway: payments.NewMockGateway(logger.NewNop())}
		m := newMarketplace(gw)
		_, offer := m.postAndAccept(t, 60)

		var (
			competing        entities.Order
			competingCreated bool
			competingErr     error
		)
		needs := &interleavedNeeds{INeedRepository: m.store.Needs()}
		needs.during = func() {
			competing, competingCreated, competingErr = m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"})
		}
		late := NewOrderUseCase(needs, m.store.Offers(), m.store.Orders(), m.store, gw, m.locks, nil, logger.NewNop())

		order, created, err := late.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"})
		mustNoErr(t, err)
		mustNoErr(t, competingErr)
		if !competingCreated || created || order.ID != competing.ID {
			t.Fatalf("expected replay of %s, got %s (created=%v competing=%v)", competing.ID, order.ID, created, competingCreated)
		}
		if gw.calls != 1 {
			t.Fatalf("expected one capture, got %d", gw.calls)
		}
	})

	t.Run("declined payment leaves state untouched", func(t *testing.T) {
		m := newMarketplace(payments.NewMockGateway(logger.NewNop()))
		need, offer := m.postAndAccept(t, 60)

		_, _, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: payments.MockDeclinedPaymentMethod})
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
		got, _ := m.needs.GetByID(ctx, need.ID)
		if got.Status != entities.NeedStatusOpen || got.OrderID != "" {
			t.Fatalf("need must stay open, got %+v", got)
		}

		// the reservation is released, so a retry with a working card succeeds
		if _, created, err := m.orders.Create(ctx, testBuyer, OrderInput{OfferID: offer.ID, PaymentMethod: "pix"}); err != nil || !created {
			t.Fatalf("retry failed: created=%v err=%v", created, err)
		}
	})
}

func TestMarketplace_StaleWriteIsRejected(t *testing.T) {
	ctx := context.Background()
	m := newMarketplace(payments.NewMockGateway(logger.NewNop()))

	need, err := m.needs.Create(ctx, testBuyer, NeedInput{Title: "Move sofa", Category: "moving"})
	mustNoErr(t, err)

	stale, err := m.store.Needs().GetByID(ctx, need.ID)
	mustNoErr(t, err)
	_, err = m.needs.Update(ctx, testBuyer, need.ID, NeedPatch{Title: ptr("Move two sofas")})
	mustNoErr(t, err)

	stale.Title = "overwrite"
	err = commit(ctx, m.store, interfaces.WriteSet{Needs: []entities.Need{stale}})
	if !errors.Is(err, ErrConcurrentUpdate) {
		t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
	}
}
