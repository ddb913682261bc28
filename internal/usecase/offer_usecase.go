package usecase

import (
	"context"
	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/google/uuid"
)

type OfferInput struct {
	NeedID       string
	Price        float64
	Message      string
	DeliveryTime string
}

// IOfferUseCase covers the negotiation between a need owner and sellers.
//
// Party rules:
//   - plain offers are accepted/declined/countered by the need owner
//   - counter-offers are accepted/declined by the seller they were sent to
type IOfferUseCase interface {
	Create(ctx context.Context, actor entities.Actor, input OfferInput) (entities.Offer, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Offer, error)
	ListByNeedID(ctx context.Context, actor entities.Actor, needID string) ([]entities.Offer, error)
	ListSent(ctx context.Context, actor entities.Actor) ([]entities.Offer, error)
	Accept(ctx context.Context, actor entities.Actor, id string) (entities.Offer, error)
	Decline(ctx context.Context, actor entities.Actor, id string) (entities.Offer, error)
	Counter(ctx context.Context, actor entities.Actor, id string, amount float64, message string) (entities.Offer, error)
}

type OfferUseCase struct {
	needRepo  interfaces.INeedRepository
	offerRepo interfaces.IOfferRepository
	uow       interfaces.IUnitOfWork
	activity  activityRecorder
	log       *logger.Logger
}

var _ IOfferUseCase = (*OfferUseCase)(nil)

func NewOfferUseCase(needRepo interfaces.INeedRepository, offerRepo interfaces.IOfferRepository, uow interfaces.IUnitOfWork, activityLog interfaces.IActivityLog, log *logger.Logger) *OfferUseCase {
	log = log.With("usecase", "offer")
	return &OfferUseCase{
		needRepo:  needRepo,
		offerRepo: offerRepo,
		uow:       uow,
		activity:  activityRecorder{sink: activityLog, log: log},
		log:       log,
	}
}

func (u *OfferUseCase) Create(ctx context.Context, actor entities.Actor, input OfferInput) (entities.Offer, error) {
	if input.Price <= 0 || !entities.HasWholeCents(input.Price) {
		return entities.Offer{}, ErrInvalidOfferPrice
	}
	need, err := u.loadNeed(ctx, input.NeedID)
	if err != nil {
		return entities.Offer{}, err
	}
	if actor.ID == "" || actor.ID == need.BuyerID {
		return entities.Offer{}, ErrForbidden
	}
	if need.Status != entities.NeedStatusOpen {
		return entities.Offer{}, ErrNeedNotOpen
	}

	now := time.Now().UTC()
	o := entities.Offer{
		ID:           uuid.NewString(),
		NeedID:       need.ID,
		BuyerID:      need.BuyerID,
		SellerID:     actor.ID,
		SellerName:   actor.Name,
		SellerEmail:  actor.Email,
		Price:        input.Price,
		Message:      strings.TrimSpace(input.Message),
		DeliveryTime: strings.TrimSpace(input.DeliveryTime),
		Status:       entities.OfferStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := commit(ctx, u.uow, interfaces.WriteSet{Offers: []entities.Offer{o}}); err != nil {
		u.log.Error("[offer][usecase] create failed", "need_id", need.ID, "error", err)
		return entities.Offer{}, err
	}
	o.Version++
	u.log.Info("[offer][usecase] created", "offer_id", o.ID, "need_id", o.NeedID, "price", o.Price)
	return o, nil
}

func (u *OfferUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Offer, error) {
	o, err := u.loadOffer(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if !actor.IsAdmin() && actor.ID != o.SellerID && actor.ID != o.BuyerID {
		return entities.Offer{}, ErrForbidden
	}
	return o, nil
}

// ListByNeedID returns every offer to the need owner and only the caller's own
// offers to anyone else.
func (u *OfferUseCase) ListByNeedID(ctx context.Context, actor entities.Actor, needID string) ([]entities.Offer, error) {
	need, err := u.loadNeed(ctx, needID)
	if err != nil {
		return nil, err
	}
	offers, err := u.offerRepo.ListByNeedID(ctx, need.ID)
	if err != nil {
		return nil, err
	}
	if actor.ID != need.BuyerID && !actor.IsAdmin() {
		mine := make([]entities.Offer, 0, len(offers))
		for _, o := range offers {
			if o.SellerID == actor.ID {
				mine = append(mine, o)
			}
		}
		offers = mine
	}
	entities.SortOffersForDisplay(offers)
	return offers, nil
}

func (u *OfferUseCase) ListSent(ctx context.Context, actor entities.Actor) ([]entities.Offer, error) {
	if strings.TrimSpace(actor.ID) == "" {
		return nil, ErrForbidden
	}
	offers, err := u.offerRepo.ListBySellerID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	entities.SortOffersForDisplay(offers)
	return offers, nil
}

// Accept marks the offer accepted and pins it on the need. A need holds at
// most one accepted offer; a cancelled order clears it again.
func (u *OfferUseCase) Accept(ctx context.Context, actor entities.Actor, id string) (entities.Offer, error) {
	o, need, err := u.loadForDecision(ctx, actor, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if need.Status != entities.NeedStatusOpen {
		return entities.Offer{}, ErrNeedNotOpen
	}
	if need.AcceptedOfferID != "" && need.AcceptedOfferID != o.ID {
		return entities.Offer{}, ErrNeedHasAcceptedOffer
	}

	now := time.Now().UTC()
	o.Status = entities.OfferStatusAccepted
	o.UpdatedAt = now
	need.AcceptedOfferID = o.ID
	need.UpdatedAt = now

	ws := interfaces.WriteSet{Needs: []entities.Need{need}, Offers: []entities.Offer{o}}
	if err := commit(ctx, u.uow, ws); err != nil {
		u.log.Error("[offer][usecase] accept failed", "offer_id", o.ID, "error", err)
		return entities.Offer{}, err
	}
	o.Version++
	u.activity.record(ctx, activity("offer", o.ID, string(entities.OfferStatusPending), string(o.Status), actor, acceptNote(o)))
	u.log.Info("[offer][usecase] accepted", "offer_id", o.ID, "need_id", need.ID, "counter", o.IsCounterOffer)
	return o, nil
}

func (u *OfferUseCase) Decline(ctx context.Context, actor entities.Actor, id string) (entities.Offer, error) {
	o, _, err := u.loadForDecision(ctx, actor, id)
	if err != nil {
		return entities.Offer{}, err
	}

	o.Status = entities.OfferStatusDeclined
	o.UpdatedAt = time.Now().UTC()
	if err := commit(ctx, u.uow, interfaces.WriteSet{Offers: []entities.Offer{o}}); err != nil {
		u.log.Error("[offer][usecase] decline failed", "offer_id", o.ID, "error", err)
		return entities.Offer{}, err
	}
	o.Version++
	u.activity.record(ctx, activity("offer", o.ID, string(entities.OfferStatusPending), string(o.Status), actor, ""))
	return o, nil
}

// Counter creates a lower-priced counter-offer and marks the original as
// countered, in one commit.
func (u *OfferUseCase) Counter(ctx context.Context, actor entities.Actor, id string, amount float64, message string) (entities.Offer, error) {
	original, need, err := u.loadForDecision(ctx, actor, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if original.IsCounterOffer {
		return entities.Offer{}, ErrCannotCounterCounter
	}
	if amount <= 0 || amount >= original.Price || !entities.HasWholeCents(amount) {
		return entities.Offer{}, ErrInvalidCounterAmount
	}
	if need.Status != entities.NeedStatusOpen {
		return entities.Offer{}, ErrNeedNotOpen
	}

	now := time.Now().UTC()
	counter := entities.Offer{
		ID:              uuid.NewString(),
		NeedID:          original.NeedID,
		BuyerID:         original.BuyerID,
		SellerID:        original.SellerID,
		SellerName:      original.SellerName,
		SellerEmail:     original.SellerEmail,
		Price:           amount,
		Message:         strings.TrimSpace(message),
		DeliveryTime:    original.DeliveryTime,
		Status:          entities.OfferStatusPending,
		IsCounterOffer:  true,
		OriginalOfferID: original.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	original.Status = entities.OfferStatusCountered
	original.CounterOfferID = counter.ID
	original.UpdatedAt = now

	if err := commit(ctx, u.uow, interfaces.WriteSet{Offers: []entities.Offer{original, counter}}); err != nil {
		u.log.Error("[offer][usecase] counter failed", "offer_id", original.ID, "error", err)
		return entities.Offer{}, err
	}
	counter.Version++
	u.activity.record(ctx, activity("offer", original.ID, string(entities.OfferStatusPending), string(original.Status), actor, "countered with "+counter.ID))
	u.log.Info("[offer][usecase] countered", "offer_id", original.ID, "counter_offer_id", counter.ID, "amount", amount)
	return counter, nil
}

// loadForDecision loads a pending offer and its need, and checks that actor is
// the party allowed to respond to it.
func (u *OfferUseCase) loadForDecision(ctx context.Context, actor entities.Actor, id string) (entities.Offer, entities.Need, error) {
	o, err := u.loadOffer(ctx, id)
	if err != nil {
		return entities.Offer{}, entities.Need{}, err
	}
	need, err := u.loadNeed(ctx, o.NeedID)
	if err != nil {
		return entities.Offer{}, entities.Need{}, err
	}

	decider := need.BuyerID
	if o.IsCounterOffer {
		decider = o.SellerID
	}
	if actor.ID == "" || actor.ID != decider {
		return entities.Offer{}, entities.Need{}, ErrForbidden
	}
	if o.Status != entities.OfferStatusPending {
		return entities.Offer{}, entities.Need{}, ErrOfferNotPending
	}
	return o, need, nil
}

func (u *OfferUseCase) loadOffer(ctx context.Context, id string) (entities.Offer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Offer{}, ErrInvalidID
	}
	o, err := u.offerRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Offer{}, err
	}
	if o.ID == "" {
		return entities.Offer{}, ErrOfferNotFound
	}
	return o, nil
}

func (u *OfferUseCase) loadNeed(ctx context.Context, id string) (entities.Need, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Need{}, ErrInvalidID
	}
	n, err := u.needRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Need{}, err
	}
	if n.ID == "" {
		return entities.Need{}, ErrNeedNotFound
	}
	return n, nil
}

func acceptNote(o entities.Offer) string {
	if o.IsCounterOffer {
		return "counter-offer accepted by seller"
	}
	return "accepted by buyer"
}
