package response

import (
	"encoding/json"
	"testing"
	"time"

	"marketplace_escrow/internal/domain/entities"
)

func TestFromNeed_NullBackReferences(t *testing.T) {
	b, err := json.Marshal(FromNeed(entities.Need{ID: "n1", Status: entities.NeedStatusOpen}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if v, ok := body["orderId"]; !ok || v != nil {
		t.Fatalf("expected orderId null, got %v", body["orderId"])
	}
	if body["status"] != "open" {
		t.Fatalf("unexpected status: %v", body["status"])
	}

	withOrder := FromNeed(entities.Need{ID: "n1", OrderID: "o1"})
	if withOrder.OrderID == nil || *withOrder.OrderID != "o1" {
		t.Fatalf("expected orderId to be set")
	}
}

func TestFromOrder(t *testing.T) {
	now := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	o := entities.Order{ID: "o1", Amount: 150, PlatformFee: 7.5, SellerEarnings: 142.5}
	o.ApplyStatus(entities.OrderStatusPaymentHeld, now, entities.OrderCreatedNote)

	resp := FromOrder(o)
	if len(resp.StatusHistory) != 1 || resp.StatusHistory[0].Status != "payment_held" {
		t.Fatalf("unexpected history: %+v", resp.StatusHistory)
	}
	if resp.PlatformFee+resp.SellerEarnings != resp.Amount {
		t.Fatalf("fee split must add up")
	}

	b, _ := json.Marshal(resp)
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	for _, key := range []string{"platformFee", "sellerEarnings", "statusHistory", "workflowType", "deliveredAt"} {
		if _, ok := body[key]; !ok {
			t.Fatalf("missing key %s in %s", key, b)
		}
	}
}

func TestFromOffersAndDisputes(t *testing.T) {
	offers := FromOffers([]entities.Offer{{ID: "f1", IsCounterOffer: true, OriginalOfferID: "f0"}})
	if len(offers) != 1 || offers[0].OriginalOfferID == nil || *offers[0].OriginalOfferID != "f0" || offers[0].CounterOfferID != nil {
		t.Fatalf("unexpected offers: %+v", offers)
	}

	disputes := FromDisputes([]entities.Dispute{{ID: "d1", Status: entities.DisputeStatusPending}})
	if disputes[0].Outcome != nil || disputes[0].Resolution != nil {
		t.Fatalf("pending dispute must have null outcome and resolution")
	}
	if len(FromDisputes(nil)) != 0 {
		t.Fatalf("nil input must give empty slice")
	}
}
