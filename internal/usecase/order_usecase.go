package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	OrderRoleBuyer  = "buyer"
	OrderRoleSeller = "seller"

	defaultOrderLockTTL = 2 * time.Minute
)

type OrderInput struct {
	OfferID        string
	PaymentMethod  string
	IdempotencyKey string
}

// IOrderUseCase exposes the escrow order lifecycle.
//
//   - Create: buyer pays an accepted offer; payment is held in escrow
//   - UpdateStatus: seller advances the work, either party cancels early
//   - ConfirmDelivery: buyer releases escrow
type IOrderUseCase interface {
	// Create returns created=false when the offer already had an order and the
	// existing one is returned instead.
	Create(ctx context.Context, actor entities.Actor, input OrderInput) (order entities.Order, created bool, err error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
	ListMine(ctx context.Context, actor entities.Actor, role string) ([]entities.Order, error)
	UpdateStatus(ctx context.Context, actor entities.Actor, id string, status entities.OrderStatus, note string) (entities.Order, error)
	ConfirmDelivery(ctx context.Context, actor entities.Actor, id string) (entities.Order, error)
}

type OrderUseCase struct {
	needRepo    interfaces.INeedRepository
	offerRepo   interfaces.IOfferRepository
	orderRepo   interfaces.IOrderRepository
	uow         interfaces.IUnitOfWork
	gateway     interfaces.IPaymentGateway
	idempotency interfaces.IIdempotencyStore
	activity    activityRecorder
	log         *logger.Logger
	lockTTL     time.Duration
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	needRepo interfaces.INeedRepository,
	offerRepo interfaces.IOfferRepository,
	orderRepo interfaces.IOrderRepository,
	uow interfaces.IUnitOfWork,
	gateway interfaces.IPaymentGateway,
	idempotency interfaces.IIdempotencyStore,
	activityLog interfaces.IActivityLog,
	log *logger.Logger,
) *OrderUseCase {
	log = log.With("usecase", "order")
	return &OrderUseCase{
		needRepo:    needRepo,
		offerRepo:   offerRepo,
		orderRepo:   orderRepo,
		uow:         uow,
		gateway:     gateway,
		idempotency: idempotency,
		activity:    activityRecorder{sink: activityLog, log: log},
		log:         log,
		lockTTL:     defaultOrderLockTTL,
	}
}

func (u *OrderUseCase) Create(ctx context.Context, actor entities.Actor, input OrderInput) (entities.Order, bool, error) {
	offerID := strings.TrimSpace(input.OfferID)
	paymentMethod := strings.TrimSpace(input.PaymentMethod)
	u.log.Info("[order][usecase] create start", "offer_id", offerID, "payment_method", paymentMethod)
	if offerID == "" {
		return entities.Order{}, false, ErrInvalidID
	}
	if paymentMethod == "" {
		return entities.Order{}, false, ErrInvalidPaymentMethod
	}

	offer, need, err := u.loadPayable(ctx, actor, offerID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if offer.OrderID != "" {
		return u.replayExisting(ctx, actor, offer)
	}

	lockKey := "order-create:" + offer.ID
	if u.idempotency != nil {
		token, ok, err := u.idempotency.Reserve(ctx, lockKey, u.lockTTL)
		if err != nil {
			u.log.Error("[order][usecase] idempotency reserve failed", "offer_id", offer.ID, "error", err)
			return entities.Order{}, false, err
		}
		if !ok {
			u.log.Warn("[order][usecase] create already in progress", "offer_id", offer.ID)
			return entities.Order{}, false, ErrOrderCreationInProgress
		}
		defer func() {
			// the request context may already be done; release on a fresh one
			relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			if err := u.idempotency.Release(relCtx, lockKey, token); err != nil {
				u.log.Warn("[order][usecase] idempotency release failed", "offer_id", offer.ID, "error", err)
			}
		}()

		// A request holding the lock before us may have committed an order
		// after our first read; only state read under the lock is trusted.
		offer, need, err = u.loadPayable(ctx, actor, offerID)
		if err != nil {
			return entities.Order{}, false, err
		}
		if offer.OrderID != "" {
			return u.replayExisting(ctx, actor, offer)
		}
	}

	paymentID, paymentStatus, err := u.capturePayment(ctx, need, offer, paymentMethod)
	if err != nil {
		return entities.Order{}, false, err
	}

	now := time.Now().UTC()
	fee, earnings := entities.CalculateFees(offer.Price)
	order := entities.Order{
		ID:             uuid.NewString(),
		NeedID:         need.ID,
		OfferID:        offer.ID,
		NeedTitle:      need.Title,
		NeedCategory:   need.Category,
		OfferMessage:   offer.Message,
		DeliveryTime:   offer.DeliveryTime,
		Amount:         offer.Price,
		PlatformFee:    fee,
		SellerEarnings: earnings,
		BuyerID:        need.BuyerID,
		BuyerName:      need.BuyerName,
		BuyerEmail:     need.BuyerEmail,
		SellerID:       offer.SellerID,
		SellerName:     offer.SellerName,
		SellerEmail:    offer.SellerEmail,
		WorkflowType:   entities.WorkflowTypeFor(need.Category),
		PaymentMethod:  paymentMethod,
		PaymentID:      paymentID,
		PaymentStatus:  paymentStatus,
		IdempotencyKey: strings.TrimSpace(input.IdempotencyKey),
		CreatedAt:      now,
	}
	order.ApplyStatus(entities.OrderStatusPaymentHeld, now, entities.OrderCreatedNote)

	oldNeedStatus := need.Status
	need.Status = entities.NeedStatusInProgress
	need.OrderID = order.ID
	need.UpdatedAt = now
	offer.OrderID = order.ID
	offer.UpdatedAt = now

	ws := interfaces.WriteSet{
		Needs:  []entities.Need{need},
		Offers: []entities.Offer{offer},
		Orders: []entities.Order{order},
	}
	if err := commit(ctx, u.uow, ws); err != nil {
		// The payment was captured but nothing was stored; it has to be
		// refunded by hand.
		u.log.Error("[order][usecase] commit failed after payment capture",
			"offer_id", offer.ID, "payment_id", paymentID, "error", err)
		return entities.Order{}, false, err
	}
	order.Version++

	u.activity.record(ctx,
		activity("order", order.ID, "", string(order.Status), actor, entities.OrderCreatedNote),
		activity("need", need.ID, string(oldNeedStatus), string(need.Status), actor, "order "+order.ID),
	)
	u.log.Info("[order][usecase] create success", "order_id", order.ID, "offer_id", offer.ID,
		"amount", order.Amount, "platform_fee", order.PlatformFee, "payment_id", paymentID)
	return order, true, nil
}

// loadPayable loads the offer and its need and checks that the actor may pay
// for it. An offer that already has an order is returned as is with a zero
// need so the caller can replay it.
func (u *OrderUseCase) loadPayable(ctx context.Context, actor entities.Actor, offerID string) (entities.Offer, entities.Need, error) {
	offer, err := u.offerRepo.GetByID(ctx, offerID)
	if err != nil {
		return entities.Offer{}, entities.Need{}, err
	}
	if offer.ID == "" {
		return entities.Offer{}, entities.Need{}, ErrOfferNotFound
	}
	if offer.OrderID != "" {
		return offer, entities.Need{}, nil
	}
	if offer.Status != entities.OfferStatusAccepted {
		return entities.Offer{}, entities.Need{}, ErrOfferNotAccepted
	}

	need, err := u.needRepo.GetByID(ctx, offer.NeedID)
	if err != nil {
		return entities.Offer{}, entities.Need{}, err
	}
	if need.ID == "" {
		return entities.Offer{}, entities.Need{}, ErrNeedNotFound
	}
	if actor.ID == "" || actor.ID != need.BuyerID {
		return entities.Offer{}, entities.Need{}, ErrForbidden
	}
	if need.AcceptedOfferID != offer.ID {
		return entities.Offer{}, entities.Need{}, ErrOfferNotAccepted
	}
	if need.Status != entities.NeedStatusOpen {
		return entities.Offer{}, entities.Need{}, ErrNeedNotOpen
	}
	return offer, need, nil
}

func (u *OrderUseCase) replayExisting(ctx context.Context, actor entities.Actor, offer entities.Offer) (entities.Order, bool, error) {
	existing, err := u.orderRepo.GetByID(ctx, offer.OrderID)
	if err != nil {
		return entities.Order{}, false, err
	}
	if existing.ID == "" {
		return entities.Order{}, false, ErrOrderNotFound
	}
	if existing.BuyerID != actor.ID {
		return entities.Order{}, false, ErrForbidden
	}
	u.log.Info("[order][usecase] create replayed", "order_id", existing.ID, "offer_id", offer.ID)
	return existing, false, nil
}

func (u *OrderUseCase) capturePayment(ctx context.Context, need entities.Need, offer entities.Offer, paymentMethod string) (string, string, error) {
	if u.gateway == nil {
		u.log.Error("[order][usecase] payment gateway not configured", "offer_id", offer.ID)
		return "", "", ErrPaymentGatewayUnavailable
	}

	payload := map[string]any{
		"transaction_amount": offer.Price,
		"payment_method_id":  paymentMethod,
		"description":        fmt.Sprintf("Escrow for need %q", need.Title),
		"external_reference": offer.ID,
		"installments":       1,
		"payer": map[string]any{
			"email": need.BuyerEmail,
		},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", "", err
	}

	paymentID, status, _, err := u.gateway.CreatePayment(ctx, raw)
	if err != nil {
		u.log.Error("[order][usecase] payment gateway failed", "offer_id", offer.ID, "error", err)
		return "", "", fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
	}
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return paymentID, status, nil
	default:
		u.log.Warn("[order][usecase] payment not approved", "offer_id", offer.ID, "payment_id", paymentID, "provider_status", status)
		return "", "", ErrPaymentDeclined
	}
}

func (u *OrderUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	o, err := u.loadOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !o.IsParty(actor.ID) && !actor.IsAdmin() {
		return entities.Order{}, ErrForbidden
	}
	return o, nil
}

// ListMine lists the caller's orders as buyer, as seller, or both when role
// is empty.
func (u *OrderUseCase) ListMine(ctx context.Context, actor entities.Actor, role string) ([]entities.Order, error) {
	if strings.TrimSpace(actor.ID) == "" {
		return nil, ErrForbidden
	}
	role = strings.ToLower(strings.TrimSpace(role))

	var asBuyer, asSeller []entities.Order
	g, gctx := errgroup.WithContext(ctx)
	switch role {
	case OrderRoleBuyer:
		g.Go(func() (err error) { asBuyer, err = u.orderRepo.ListByBuyerID(gctx, actor.ID); return err })
	case OrderRoleSeller:
		g.Go(func() (err error) { asSeller, err = u.orderRepo.ListBySellerID(gctx, actor.ID); return err })
	case "":
		g.Go(func() (err error) { asBuyer, err = u.orderRepo.ListByBuyerID(gctx, actor.ID); return err })
		g.Go(func() (err error) { asSeller, err = u.orderRepo.ListBySellerID(gctx, actor.ID); return err })
	default:
		return nil, ErrInvalidOrderRole
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(asBuyer)+len(asSeller))
	orders := make([]entities.Order, 0, len(asBuyer)+len(asSeller))
	for _, o := range append(asBuyer, asSeller...) {
		if _, dup := seen[o.ID]; dup {
			continue
		}
		seen[o.ID] = struct{}{}
		orders = append(orders, o)
	}
	sort.SliceStable(orders, func(i, j int) bool { return orders[i].CreatedAt.After(orders[j].CreatedAt) })
	return orders, nil
}

// UpdateStatus applies a seller progress update or a cancellation and pushes
// the derived status to the need in the same commit.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, actor entities.Actor, id string, status entities.OrderStatus, note string) (entities.Order, error) {
	switch status {
	case entities.OrderStatusInProgress, entities.OrderStatusDelivered, entities.OrderStatusCancelled:
	default:
		// completed and dispute_pending have dedicated operations
		return entities.Order{}, ErrInvalidOrderStatus
	}

	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	switch status {
	case entities.OrderStatusCancelled:
		if !order.IsParty(actor.ID) {
			return entities.Order{}, ErrForbidden
		}
	default:
		if actor.ID != order.SellerID {
			return entities.Order{}, ErrForbidden
		}
	}
	if !order.Status.CanTransitionTo(status) {
		u.log.Warn("[order][usecase] illegal transition", "order_id", order.ID, "from", order.Status, "to", status)
		return entities.Order{}, ErrIllegalTransition
	}

	need, err := u.loadNeed(ctx, order.NeedID)
	if err != nil {
		return entities.Order{}, err
	}

	now := time.Now().UTC()
	oldStatus := order.Status
	if strings.TrimSpace(note) == "" {
		note = defaultStatusNote(status)
	}
	order.ApplyStatus(status, now, strings.TrimSpace(note))

	oldNeedStatus := need.Status
	nextNeed := derivedNeedStatus(status)
	if !need.Status.CanTransitionTo(nextNeed) {
		u.log.Warn("[order][usecase] need out of sync", "order_id", order.ID, "need_id", need.ID, "need_status", need.Status, "to", nextNeed)
		return entities.Order{}, ErrIllegalTransition
	}
	need.Status = nextNeed
	need.UpdatedAt = now
	ws := interfaces.WriteSet{Needs: []entities.Need{need}, Orders: []entities.Order{order}}

	var paidOffer entities.Offer
	if status == entities.OrderStatusCancelled {
		// The need reopens for new offers, so the paid offer must stop
		// counting as its accepted one. It keeps OrderID for replays.
		paidOffer, err = u.offerRepo.GetByID(ctx, order.OfferID)
		if err != nil {
			return entities.Order{}, err
		}
		if paidOffer.ID != "" && paidOffer.Status.CanTransitionTo(entities.OfferStatusDeclined) {
			paidOffer.Status = entities.OfferStatusDeclined
			paidOffer.UpdatedAt = now
			ws.Offers = []entities.Offer{paidOffer}
		}
		need.OrderID = ""
		need.AcceptedOfferID = ""
		ws.Needs = []entities.Need{need}
	}

	if err := commit(ctx, u.uow, ws); err != nil {
		u.log.Error("[order][usecase] update status failed", "order_id", order.ID, "error", err)
		return entities.Order{}, err
	}
	order.Version++

	entries := []entities.ActivityEntry{activity("order", order.ID, string(oldStatus), string(order.Status), actor, note)}
	if oldNeedStatus != need.Status {
		entries = append(entries, activity("need", need.ID, string(oldNeedStatus), string(need.Status), actor, "order "+order.ID))
	}
	if len(ws.Offers) > 0 {
		entries = append(entries, activity("offer", paidOffer.ID, string(entities.OfferStatusAccepted), string(paidOffer.Status), actor, "order "+order.ID+" cancelled"))
	}
	u.activity.record(ctx, entries...)
	u.log.Info("[order][usecase] status updated", "order_id", order.ID, "from", oldStatus, "to", order.Status)
	return order, nil
}

// ConfirmDelivery releases escrow to the seller.
func (u *OrderUseCase) ConfirmDelivery(ctx context.Context, actor entities.Actor, id string) (entities.Order, error) {
	order, err := u.loadOrder(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if actor.ID != order.BuyerID {
		return entities.Order{}, ErrForbidden
	}
	if order.Status != entities.OrderStatusDelivered {
		return entities.Order{}, ErrIllegalTransition
	}
	need, err := u.loadNeed(ctx, order.NeedID)
	if err != nil {
		return entities.Order{}, err
	}
	if !need.Status.CanTransitionTo(entities.NeedStatusCompleted) {
		return entities.Order{}, ErrIllegalTransition
	}

	now := time.Now().UTC()
	order.ApplyStatus(entities.OrderStatusCompleted, now, "Delivery confirmed by buyer; escrow released")
	oldNeedStatus := need.Status
	need.Status = entities.NeedStatusCompleted
	need.UpdatedAt = now

	ws := interfaces.WriteSet{Needs: []entities.Need{need}, Orders: []entities.Order{order}}
	if err := commit(ctx, u.uow, ws); err != nil {
		u.log.Error("[order][usecase] confirm delivery failed", "order_id", order.ID, "error", err)
		return entities.Order{}, err
	}
	order.Version++

	u.activity.record(ctx,
		activity("order", order.ID, string(entities.OrderStatusDelivered), string(order.Status), actor, "delivery confirmed"),
		activity("need", need.ID, string(oldNeedStatus), string(need.Status), actor, "order "+order.ID),
	)
	u.log.Info("[order][usecase] delivery confirmed", "order_id", order.ID, "seller_earnings", order.SellerEarnings)
	return order, nil
}

func (u *OrderUseCase) loadOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidID
	}
	o, err := u.orderRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) loadNeed(ctx context.Context, id string) (entities.Need, error) {
	n, err := u.needRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Need{}, err
	}
	if n.ID == "" {
		return entities.Need{}, ErrNeedNotFound
	}
	return n, nil
}

// derivedNeedStatus maps an order status onto the status its need shows.
func derivedNeedStatus(s entities.OrderStatus) entities.NeedStatus {
	switch s {
	case entities.OrderStatusDelivered:
		return entities.NeedStatusDelivered
	case entities.OrderStatusDisputePending:
		return entities.NeedStatusDisputePending
	case entities.OrderStatusCompleted:
		return entities.NeedStatusCompleted
	case entities.OrderStatusCancelled:
		// the buyer can pick another offer
		return entities.NeedStatusOpen
	default:
		return entities.NeedStatusInProgress
	}
}

func defaultStatusNote(s entities.OrderStatus) string {
	switch s {
	case entities.OrderStatusInProgress:
		return "Seller started working on the order"
	case entities.OrderStatusDelivered:
		return "Seller marked the order as delivered"
	case entities.OrderStatusCancelled:
		return "Order cancelled; escrowed payment awaits return to buyer"
	default:
		return ""
	}
}
