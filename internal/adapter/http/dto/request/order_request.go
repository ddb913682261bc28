package request

import (
	"strings"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type CreateOrderRequest struct {
	OfferID       string `json:"offerId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

func (r CreateOrderRequest) ToInput(idempotencyKey string) usecase.OrderInput {
	return usecase.OrderInput{
		OfferID:        r.OfferID,
		PaymentMethod:  r.PaymentMethod,
		IdempotencyKey: strings.TrimSpace(idempotencyKey),
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (r UpdateOrderStatusRequest) OrderStatus() entities.OrderStatus {
	return entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
}
