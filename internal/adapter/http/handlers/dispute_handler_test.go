package handlers

import (
	"net/http"
	"testing"

	"marketplace_escrow/internal/adapter/http/handlers/mocks"
	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestDisputeHandler_CreateDispute(t *testing.T) {
	t.Run("missing reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := newTestRouter(buyer)
		r.POST("/v1/orders/:id/disputes", h.CreateDispute)

		if w := doJSON(r, http.MethodPost, "/v1/orders/ord-1/disputes", `{}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("order not delivered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := newTestRouter(buyer)
		r.POST("/v1/orders/:id/disputes", h.CreateDispute)

		uc.EXPECT().Create(gomock.Any(), buyer, "ord-1", "broken").Return(entities.Dispute{}, usecase.ErrIllegalTransition)

		if w := doJSON(r, http.MethodPost, "/v1/orders/ord-1/disputes", `{"reason":"broken"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := newTestRouter(buyer)
		r.POST("/v1/orders/:id/disputes", h.CreateDispute)

		uc.EXPECT().Create(gomock.Any(), buyer, "ord-1", "broken").
			Return(entities.Dispute{ID: "d1", OrderID: "ord-1", Reason: "broken", Status: entities.DisputeStatusPending}, nil)

		w := doJSON(r, http.MethodPost, "/v1/orders/ord-1/disputes", `{"reason":"broken"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		dispute, _ := decodeBody(t, w)["dispute"].(map[string]any)
		if dispute["id"] != "d1" || dispute["outcome"] != nil {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestDisputeHandler_ListOrderDisputes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIDisputeUseCase(ctrl)
	h := NewDisputeHandler(uc)

	r := newTestRouter(seller)
	r.GET("/v1/orders/:id/disputes", h.ListOrderDisputes)

	uc.EXPECT().ListByOrderID(gomock.Any(), seller, "ord-1").Return([]entities.Dispute{{ID: "d1"}}, nil)

	w := doJSON(r, http.MethodGet, "/v1/orders/ord-1/disputes", "")
	if disputes, _ := decodeBody(t, w)["disputes"].([]any); w.Code != http.StatusOK || len(disputes) != 1 {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}
}

func TestDisputeHandler_ResolveDispute(t *testing.T) {
	admin := entities.Actor{ID: "admin-1", Role: entities.RoleAdmin}

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := newTestRouter(admin)
		r.POST("/v1/disputes/:id/resolve", h.ResolveDispute)

		uc.EXPECT().Resolve(gomock.Any(), admin, "d1", entities.DisputeOutcomeRefund, "").Return(entities.Dispute{}, usecase.ErrDisputeNotPending)

		if w := doJSON(r, http.MethodPost, "/v1/disputes/d1/resolve", `{"outcome":"refund"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDisputeUseCase(ctrl)
		h := NewDisputeHandler(uc)

		r := newTestRouter(admin)
		r.POST("/v1/disputes/:id/resolve", h.ResolveDispute)

		uc.EXPECT().Resolve(gomock.Any(), admin, "d1", entities.DisputeOutcomeRelease, "seller delivered").
			Return(entities.Dispute{ID: "d1", Status: entities.DisputeStatusResolved, Outcome: entities.DisputeOutcomeRelease}, nil)

		w := doJSON(r, http.MethodPost, "/v1/disputes/d1/resolve", `{"outcome":"RELEASE","resolution":"seller delivered"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		dispute, _ := decodeBody(t, w)["dispute"].(map[string]any)
		if dispute["outcome"] != "release" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
