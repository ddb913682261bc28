package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/usecase/interfaces"
	mock_interfaces "marketplace_escrow/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	testBuyer  = entities.Actor{ID: "buyer-1", Name: "Bia", Email: "bia@example.com", Role: "user"}
	testSeller = entities.Actor{ID: "seller-1", Name: "Sam", Email: "sam@example.com", Role: "user"}
	testAdmin  = entities.Actor{ID: "admin-1", Name: "Ada", Role: entities.RoleAdmin}
)

func ptr[T any](v T) *T { return &v }

func TestNeedUseCase_Create(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		uc := NewNeedUseCase(nil, nil, nil, nil, logger.NewNop())
		cases := []struct {
			name  string
			input NeedInput
			want  error
		}{
			{"blank title", NeedInput{Title: "  ", Category: "plumbing"}, ErrInvalidNeedTitle},
			{"blank category", NeedInput{Title: "Fix sink"}, ErrInvalidNeedCategory},
			{"negative budget", NeedInput{Title: "Fix sink", Category: "plumbing", BudgetMin: ptr(-1.0)}, ErrInvalidBudget},
			{"min above max", NeedInput{Title: "Fix sink", Category: "plumbing", BudgetMin: ptr(200.0), BudgetMax: ptr(100.0)}, ErrInvalidBudget},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Create(context.Background(), testBuyer, tc.input); !errors.Is(err, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})

	t.Run("commit error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
		uc := NewNeedUseCase(nil, nil, uow, nil, logger.NewNop())

		uow.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.Create(context.Background(), testBuyer, NeedInput{Title: "Fix sink", Category: "plumbing"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
		uc := NewNeedUseCase(nil, nil, uow, nil, logger.NewNop())

		uow.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws interfaces.WriteSet) error {
				if len(ws.Needs) != 1 || ws.Len() != 1 {
					t.Fatalf("expected a single need write, got %+v", ws)
				}
				n := ws.Needs[0]
				if n.ID == "" || n.Version != 0 || n.Status != entities.NeedStatusOpen || n.Category != entities.CategoryOther {
					t.Fatalf("unexpected need: %+v", n)
				}
				return nil
			},
		)

		n, err := uc.Create(context.Background(), testBuyer, NeedInput{Title: " Fix sink ", Category: "Astrology", BudgetMax: ptr(100.0)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.Title != "Fix sink" || n.BuyerID != testBuyer.ID || n.BuyerEmail != testBuyer.Email || n.Version != 1 {
			t.Fatalf("unexpected need: %+v", n)
		}
	})
}

func TestNeedUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewNeedUseCase(nil, nil, nil, nil, logger.NewNop())
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		uc := NewNeedUseCase(repo, nil, nil, nil, logger.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(entities.Need{}, nil)

		if _, err := uc.GetByID(context.Background(), "n1"); !errors.Is(err, ErrNeedNotFound) {
			t.Fatalf("expected ErrNeedNotFound, got %v", err)
		}
	})
}

func TestNeedUseCase_List(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewNeedUseCase(nil, nil, nil, nil, logger.NewNop())
		if _, err := uc.List(context.Background(), entities.NeedFilter{Status: "archived"}); !errors.Is(err, ErrInvalidNeedStatus) {
			t.Fatalf("expected ErrInvalidNeedStatus, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		uc := NewNeedUseCase(repo, nil, nil, nil, logger.NewNop())

		t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().List(gomock.Any(), entities.NeedFilter{Category: "plumbing"}).Return([]entities.Need{
			{ID: "old", CreatedAt: t0},
			{ID: "new", CreatedAt: t0.Add(time.Hour)},
		}, nil)

		needs, err := uc.List(context.Background(), entities.NeedFilter{Category: "PLUMBING"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(needs) != 2 || needs[0].ID != "new" {
			t.Fatalf("unexpected order: %+v", needs)
		}
	})
}

func TestNeedUseCase_Update(t *testing.T) {
	open := entities.Need{ID: "n1", Title: "Fix sink", Category: "plumbing", Status: entities.NeedStatusOpen, BuyerID: testBuyer.ID, Version: 3}

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		uc := NewNeedUseCase(repo, nil, nil, nil, logger.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(open, nil)

		if _, err := uc.Update(context.Background(), testSeller, "n1", NeedPatch{Title: ptr("x")}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("buyer cannot drive order statuses", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		uc := NewNeedUseCase(repo, nil, nil, nil, logger.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(open, nil)

		_, err := uc.Update(context.Background(), testBuyer, "n1", NeedPatch{Status: ptr(entities.NeedStatusInProgress)})
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("merged budget must stay ordered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		uc := NewNeedUseCase(repo, nil, nil, nil, logger.NewNop())

		withBudget := open
		withBudget.BudgetMax = ptr(100.0)
		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(withBudget, nil)

		if _, err := uc.Update(context.Background(), testBuyer, "n1", NeedPatch{BudgetMin: ptr(150.0)}); !errors.Is(err, ErrInvalidBudget) {
			t.Fatalf("expected ErrInvalidBudget, got %v", err)
		}
	})

	t.Run("close records activity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
		activityLog := mock_interfaces.NewMockIActivityLog(ctrl)
		uc := NewNeedUseCase(repo, nil, uow, activityLog, logger.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(open, nil)
		uow.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws interfaces.WriteSet) error {
				if ws.Needs[0].Version != 3 || ws.Needs[0].Status != entities.NeedStatusClosed {
					t.Fatalf("unexpected write: %+v", ws.Needs[0])
				}
				return nil
			},
		)
		activityLog.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.ActivityEntry) error {
				if e.RelatedType != "need" || e.OldStatus != "open" || e.NewStatus != "closed" || e.ChangedBy != testBuyer.ID {
					t.Fatalf("unexpected activity: %+v", e)
				}
				return errors.New("mongo down")
			},
		)

		n, err := uc.Update(context.Background(), testBuyer, "n1", NeedPatch{Status: ptr(entities.NeedStatusClosed)})
		if err != nil {
			t.Fatalf("activity failures must not fail the update: %v", err)
		}
		if n.Version != 4 {
			t.Fatalf("expected version 4, got %d", n.Version)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
		uc := NewNeedUseCase(repo, nil, uow, nil, logger.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(open, nil)
		uow.EXPECT().Commit(gomock.Any(), gomock.Any()).Return(fmt.Errorf("need n1: %w", interfaces.ErrVersionConflict))

		if _, err := uc.Update(context.Background(), testBuyer, "n1", NeedPatch{Title: ptr("Fix kitchen sink")}); !errors.Is(err, ErrConcurrentUpdate) {
			t.Fatalf("expected ErrConcurrentUpdate, got %v", err)
		}
	})
}

func TestNeedUseCase_Delete(t *testing.T) {
	t.Run("only open needs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		uc := NewNeedUseCase(repo, nil, nil, nil, logger.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(entities.Need{ID: "n1", BuyerID: testBuyer.ID, Status: entities.NeedStatusInProgress}, nil)

		if err := uc.Delete(context.Background(), testBuyer, "n1"); !errors.Is(err, ErrNeedNotOpen) {
			t.Fatalf("expected ErrNeedNotOpen, got %v", err)
		}
	})

	t.Run("success declines pending offers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINeedRepository(ctrl)
		offers := mock_interfaces.NewMockIOfferRepository(ctrl)
		uow := mock_interfaces.NewMockIUnitOfWork(ctrl)
		uc := NewNeedUseCase(repo, offers, uow, nil, logger.NewNop())

		n := entities.Need{ID: "n1", BuyerID: testBuyer.ID, Status: entities.NeedStatusOpen, Version: 2}
		repo.EXPECT().GetByID(gomock.Any(), "n1").Return(n, nil)
		offers.EXPECT().ListByNeedID(gomock.Any(), "n1").Return([]entities.Offer{
			{ID: "o1", NeedID: "n1", Status: entities.OfferStatusPending, Version: 1},
			{ID: "o2", NeedID: "n1", Status: entities.OfferStatusDeclined, Version: 3},
			{ID: "o3", NeedID: "n1", Status: entities.OfferStatusPending, Version: 2},
		}, nil)
		uow.EXPECT().Commit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ws interfaces.WriteSet) error {
				if len(ws.DeletedNeeds) != 1 || ws.DeletedNeeds[0].ID != "n1" || ws.DeletedNeeds[0].Version != 2 {
					t.Fatalf("expected n1 to be deleted, got %+v", ws.DeletedNeeds)
				}
				if len(ws.Offers) != 2 || ws.Offers[0].ID != "o1" || ws.Offers[1].ID != "o3" {
					t.Fatalf("expected the two pending offers in the commit, got %+v", ws.Offers)
				}
				for _, o := range ws.Offers {
					if o.Status != entities.OfferStatusDeclined {
						t.Fatalf("offer %s should be declined, got %s", o.ID, o.Status)
					}
				}
				return nil
			},
		)

		if err := uc.Delete(context.Background(), testBuyer, "n1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
