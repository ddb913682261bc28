package request

import (
	"testing"

	"marketplace_escrow/internal/domain/entities"
)

func TestUpdateNeedRequest_ToPatch(t *testing.T) {
	status := "  CLOSED "
	title := "New title"
	patch := UpdateNeedRequest{Title: &title, Status: &status}.ToPatch()

	if patch.Status == nil || *patch.Status != entities.NeedStatusClosed {
		t.Fatalf("expected normalized closed status, got %v", patch.Status)
	}
	if patch.Title == nil || *patch.Title != title {
		t.Fatalf("expected title to be forwarded")
	}
	if patch.Category != nil || patch.BudgetMin != nil {
		t.Fatalf("absent fields must stay nil")
	}

	if p := (UpdateNeedRequest{}).ToPatch(); p.Status != nil {
		t.Fatalf("absent status must stay nil")
	}
}

func TestNeedListQuery_ToFilter(t *testing.T) {
	f := NeedListQuery{Status: "Open", Category: " Plumbing ", Search: "sink", BuyerID: " b1 "}.ToFilter()
	if f.Status != entities.NeedStatusOpen || f.Category != "plumbing" || f.BuyerID != "b1" || f.Search != "sink" {
		t.Fatalf("unexpected filter: %+v", f)
	}

	if f := (NeedListQuery{Category: "astrology"}).ToFilter(); f.Category != entities.CategoryOther {
		t.Fatalf("unknown category should map to other, got %s", f.Category)
	}
	if f := (NeedListQuery{}).ToFilter(); f.Category != "" || f.Status != "" {
		t.Fatalf("empty query must not filter, got %+v", f)
	}
}

func TestOrderRequests(t *testing.T) {
	in := CreateOrderRequest{OfferID: "f1", PaymentMethod: "pix"}.ToInput("  key-1 ")
	if in.IdempotencyKey != "key-1" || in.OfferID != "f1" {
		t.Fatalf("unexpected input: %+v", in)
	}
	if s := (UpdateOrderStatusRequest{Status: " Delivered"}).OrderStatus(); s != entities.OrderStatusDelivered {
		t.Fatalf("unexpected status: %s", s)
	}
	if o := (ResolveDisputeRequest{Outcome: "REFUND"}).DisputeOutcome(); o != entities.DisputeOutcomeRefund {
		t.Fatalf("unexpected outcome: %s", o)
	}
}
