package usecase

import (
	"context"
	"errors"
	"testing"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/usecase/interfaces"
	mock_interfaces "marketplace_escrow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type offerMocks struct {
	needs  *mock_interfaces.MockINeedRepository
	offers *mock_interfaces.MockIOfferRepository
	uow    *mock_interfaces.MockIUnitOfWork
}

func newOfferUseCaseWithMocks(t *testing.T) (*OfferUseCase, offerMocks) {
	ctrl := gomock.NewController(t)
	m := offerMocks{
		needs:  mock_interfaces.NewMockINeedRepository(ctrl),
		offers: mock_interfaces.NewMockIOfferRepository(ctrl),
		uow:    mock_interfaces.NewMockIUnitOfWork(ctrl),
	}
	return NewOfferUseCase(m.needs, m.offers, m.uow, nil, logger.NewNop()), m
}

func openNeed() entities.Need {
	return entities.Need{ID: "n1", Title: "Fix sink", Category: "plumbing", Status: entities.NeedStatusOpen, BuyerID: testBuyer.ID, Version: 1}
}

func pendingOffer() entities.Offer {
	return entities.Offer{ID: "o1", NeedID: "n1", BuyerID: testBuyer.ID, SellerID: testSeller.ID, Price: 100, Status: entities.OfferStatusPending, Version: 1}
}

func TestOfferUseCase_Create(t *testing.T) {
	t.Run("invalid price", func(t *testing.T) {
		for _, price := range []float64{0, -5, 10.005, 99.999} {
			uc, _ := newOfferUseCaseWithMocks(t)
			if _, err := uc.Create(context.Background(), testSeller, OfferInput{NeedID: "n1", Price: price}); !errors.Is(err, ErrInvalidOfferPrice) {
				t.Fatalf("price %v: expected ErrInvalidOfferPrice, got %v", price, err)
			}
		}
	})

	t.Run("buyer cannot offer on own need", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)

		if _, err := uc.Create(context.Background(), testBuyer, OfferInput{NeedID: "n1", Price: 80}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("need not open", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		need := openNeed()
		need.Status = entities.NeedStatusClosed
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(need, nil)

		if _, err := uc.Create(context.Background(), testSeller, OfferInput{NeedID: "n1", Price: 80}); !errors.Is(err, ErrNeedNotOpen) {
			t.Fatalf("expected ErrNeedNotOpen, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)
		m.uow.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(nil)

		o, err := uc.Create(context.Background(), testSeller, OfferInput{NeedID: "n1", Price: 80, Message: " hi "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.SellerID != testSeller.ID || o.BuyerID != testBuyer.ID || o.Message != "hi" || o.Status != entities.OfferStatusPending || o.IsCounterOffer {
			t.Fatalf("unexpected offer: %+v", o)
		}
	})
}

func TestOfferUseCase_Accept(t *testing.T) {
	t.Run("only the need owner decides plain offers", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(pendingOffer(), nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)

		if _, err := uc.Accept(context.Background(), testSeller, "o1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		o := pendingOffer()
		o.Status = entities.OfferStatusDeclined
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(o, nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)

		if _, err := uc.Accept(context.Background(), testBuyer, "o1"); !errors.Is(err, ErrOfferNotPending) {
			t.Fatalf("expected ErrOfferNotPending, got %v", err)
		}
	})

	t.Run("need already has an accepted offer", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		need := openNeed()
		need.AcceptedOfferID = "o0"
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(pendingOffer(), nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(need, nil)

		if _, err := uc.Accept(context.Background(), testBuyer, "o1"); !errors.Is(err, ErrNeedHasAcceptedOffer) {
			t.Fatalf("expected ErrNeedHasAcceptedOffer, got %v", err)
		}
	})

	t.Run("writes offer and need together", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(pendingOffer(), nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)
		m.uow.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws interfaces.WriteSet) error {
				if len(ws.Needs) != 1 || ws.Needs[0].AcceptedOfferID != "o1" || ws.Needs[0].Version != 1 {
					t.Fatalf("unexpected need write: %+v", ws.Needs)
				}
				if len(ws.Offers) != 1 || ws.Offers[0].Status != entities.OfferStatusAccepted {
					t.Fatalf("unexpected offer write: %+v", ws.Offers)
				}
				return nil
			},
		)

		o, err := uc.Accept(context.Background(), testBuyer, "o1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.Status != entities.OfferStatusAccepted || o.Version != 2 {
			t.Fatalf("unexpected offer: %+v", o)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(pendingOffer(), nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)
		m.uow.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(interfaces.ErrVersionConflict)

		if _, err := uc.Accept(context.Background(), testBuyer, "o1"); !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestOfferUseCase_Counter(t *testing.T) {
	t.Run("amount must be lower than price", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(pendingOffer(), nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)

		if _, err := uc.Counter(context.Background(), testBuyer, "o1", 100, ""); !errors.Is(err, ErrInvalidCounterAmount) {
			t.Fatalf("expected ErrInvalidCounterAmount, got %v", err)
		}
	})

	t.Run("amount with sub-cent digits", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(pendingOffer(), nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)

		if _, err := uc.Counter(context.Background(), testBuyer, "o1", 50.005, ""); !errors.Is(err, ErrInvalidCounterAmount) {
			t.Fatalf("expected ErrInvalidCounterAmount, got %v", err)
		}
	})

	t.Run("counter-offers cannot be countered", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		counter := pendingOffer()
		counter.IsCounterOffer = true
		counter.OriginalOfferID = "o0"
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(counter, nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)

		if _, err := uc.Counter(context.Background(), testSeller, "o1", 50, ""); !errors.Is(err, ErrCannotCounterCounter) {
			t.Fatalf("expected ErrCannotCounterCounter, got %v", err)
		}
	})

	t.Run("links original and counter", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.offers.EXPECT().GetByID(gomock.Any(), "o1").Return(pendingOffer(), nil)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)
		m.uow.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws interfaces.WriteSet) error {
				if len(ws.Offers) != 2 {
					t.Fatalf("expected original and counter, got %+v", ws.Offers)
				}
				original, counter := ws.Offers[0], ws.Offers[1]
				if original.Status != entities.OfferStatusCountered || original.CounterOfferID != counter.ID {
					t.Fatalf("unexpected original: %+v", original)
				}
				if counter.Version != 0 || counter.OriginalOfferID != "o1" {
					t.Fatalf("unexpected counter: %+v", counter)
				}
				return nil
			},
		)

		c, err := uc.Counter(context.Background(), testBuyer, "o1", 75, "meet me halfway")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.IsCounterOffer || c.Price != 75 || c.SellerID != testSeller.ID || c.Status != entities.OfferStatusPending {
			t.Fatalf("unexpected counter: %+v", c)
		}
	})
}

func TestOfferUseCase_ListByNeedID(t *testing.T) {
	offers := []entities.Offer{
		{ID: "a", SellerID: testSeller.ID, Status: entities.OfferStatusPending},
		{ID: "b", SellerID: "seller-2", Status: entities.OfferStatusPending},
	}

	t.Run("owner sees all", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)
		m.offers.EXPECT().ListByNeedID(gomock.Any(), "n1").Return(append([]entities.Offer(nil), offers...), nil)

		got, err := uc.ListByNeedID(context.Background(), testBuyer, "n1")
		if err != nil || len(got) != 2 {
			t.Fatalf("expected 2 offers, got %d (%v)", len(got), err)
		}
	})

	t.Run("seller sees own", func(t *testing.T) {
		uc, m := newOfferUseCaseWithMocks(t)
		m.needs.EXPECT().GetByID(gomock.Any(), "n1").Return(openNeed(), nil)
		m.offers.EXPECT().ListByNeedID(gomock.Any(), "n1").Return(append([]entities.Offer(nil), offers...), nil)

		got, err := uc.ListByNeedID(context.Background(), testSeller, "n1")
		if err != nil || len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("expected only own offer, got %+v (%v)", got, err)
		}
	})
}
