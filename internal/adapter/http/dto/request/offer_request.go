package request

import "marketplace_escrow/internal/usecase"

type CreateOfferRequest struct {
	NeedID       string  `json:"needId" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Message      string  `json:"message"`
	DeliveryTime string  `json:"deliveryTime"`
}

func (r CreateOfferRequest) ToInput() usecase.OfferInput {
	return usecase.OfferInput{
		NeedID:       r.NeedID,
		Price:        r.Price,
		Message:      r.Message,
		DeliveryTime: r.DeliveryTime,
	}
}

type CounterOfferRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Message string  `json:"message"`
}
