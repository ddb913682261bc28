package usecase

import (
	"context"
	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/infrastructure/logger"
	"marketplace_escrow/internal/usecase/interfaces"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// IDisputeUseCase handles buyer disputes on delivered orders and their
// resolution by an administrator.
type IDisputeUseCase interface {
	Create(ctx context.Context, actor entities.Actor, orderID string, reason string) (entities.Dispute, error)
	ListByOrderID(ctx context.Context, actor entities.Actor, orderID string) ([]entities.Dispute, error)
	Resolve(ctx context.Context, actor entities.Actor, disputeID string, outcome entities.DisputeOutcome, resolution string) (entities.Dispute, error)
}

type DisputeUseCase struct {
	needRepo    interfaces.INeedRepository
	orderRepo   interfaces.IOrderRepository
	disputeRepo interfaces.IDisputeRepository
	uow         interfaces.IUnitOfWork
	activity    activityRecorder
	log         *logger.Logger
}

var _ IDisputeUseCase = (*DisputeUseCase)(nil)

func NewDisputeUseCase(needRepo interfaces.INeedRepository, orderRepo interfaces.IOrderRepository, disputeRepo interfaces.IDisputeRepository, uow interfaces.IUnitOfWork, activityLog interfaces.IActivityLog, log *logger.Logger) *DisputeUseCase {
	log = log.With("usecase", "dispute")
	return &DisputeUseCase{
		needRepo:    needRepo,
		orderRepo:   orderRepo,
		disputeRepo: disputeRepo,
		uow:         uow,
		activity:    activityRecorder{sink: activityLog, log: log},
		log:         log,
	}
}

// Create opens a dispute and moves the order and its need to dispute_pending
// in one commit.
func (u *DisputeUseCase) Create(ctx context.Context, actor entities.Actor, orderID string, reason string) (entities.Dispute, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Dispute{}, ErrInvalidDisputeReason
	}
	order, need, err := u.loadOrderAndNeed(ctx, orderID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if actor.ID == "" || actor.ID != order.BuyerID {
		return entities.Dispute{}, ErrForbidden
	}
	if order.Status != entities.OrderStatusDelivered || !need.Status.CanTransitionTo(entities.NeedStatusDisputePending) {
		return entities.Dispute{}, ErrIllegalTransition
	}

	now := time.Now().UTC()
	d := entities.Dispute{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		NeedID:    need.ID,
		BuyerID:   order.BuyerID,
		SellerID:  order.SellerID,
		Reason:    reason,
		Status:    entities.DisputeStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	order.ApplyStatus(entities.OrderStatusDisputePending, now, "Dispute raised by buyer: "+reason)
	oldNeedStatus := need.Status
	need.Status = entities.NeedStatusDisputePending
	need.UpdatedAt = now

	ws := interfaces.WriteSet{
		Needs:    []entities.Need{need},
		Orders:   []entities.Order{order},
		Disputes: []entities.Dispute{d},
	}
	if err := commit(ctx, u.uow, ws); err != nil {
		u.log.Error("[dispute][usecase] create failed", "order_id", order.ID, "error", err)
		return entities.Dispute{}, err
	}
	d.Version++

	u.activity.record(ctx,
		activity("dispute", d.ID, "", string(d.Status), actor, reason),
		activity("order", order.ID, string(entities.OrderStatusDelivered), string(order.Status), actor, "dispute "+d.ID),
		activity("need", need.ID, string(oldNeedStatus), string(need.Status), actor, "dispute "+d.ID),
	)
	u.log.Info("[dispute][usecase] created", "dispute_id", d.ID, "order_id", order.ID)
	return d, nil
}

func (u *DisputeUseCase) ListByOrderID(ctx context.Context, actor entities.Actor, orderID string) ([]entities.Dispute, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidID
	}
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, ErrOrderNotFound
	}
	if !order.IsParty(actor.ID) && !actor.IsAdmin() {
		return nil, ErrForbidden
	}
	disputes, err := u.disputeRepo.ListByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(disputes, func(i, j int) bool { return disputes[i].CreatedAt.After(disputes[j].CreatedAt) })
	return disputes, nil
}

// Resolve settles a pending dispute. release completes the order and pays the
// seller; refund cancels the order and closes the need.
func (u *DisputeUseCase) Resolve(ctx context.Context, actor entities.Actor, disputeID string, outcome entities.DisputeOutcome, resolution string) (entities.Dispute, error) {
	if !actor.IsAdmin() {
		return entities.Dispute{}, ErrForbidden
	}
	if !outcome.IsValid() {
		return entities.Dispute{}, ErrInvalidDisputeOutcome
	}
	disputeID = strings.TrimSpace(disputeID)
	if disputeID == "" {
		return entities.Dispute{}, ErrInvalidID
	}
	d, err := u.disputeRepo.GetByID(ctx, disputeID)
	if err != nil {
		return entities.Dispute{}, err
	}
	if d.ID == "" {
		return entities.Dispute{}, ErrDisputeNotFound
	}
	if d.Status != entities.DisputeStatusPending {
		return entities.Dispute{}, ErrDisputeNotPending
	}
	order, need, err := u.loadOrderAndNeed(ctx, d.OrderID)
	if err != nil {
		return entities.Dispute{}, err
	}

	nextOrder, nextNeed := entities.OrderStatusCompleted, entities.NeedStatusCompleted
	note := "Dispute resolved in favour of seller; escrow released"
	if outcome == entities.DisputeOutcomeRefund {
		nextOrder, nextNeed = entities.OrderStatusCancelled, entities.NeedStatusClosed
		note = "Dispute resolved in favour of buyer; order cancelled, escrowed payment awaits return to buyer"
	}
	if !order.Status.CanTransitionTo(nextOrder) || !need.Status.CanTransitionTo(nextNeed) {
		return entities.Dispute{}, ErrIllegalTransition
	}

	now := time.Now().UTC()
	resolvedAt := now
	d.Status = entities.DisputeStatusResolved
	d.Outcome = outcome
	d.Resolution = strings.TrimSpace(resolution)
	d.ResolvedBy = actor.ID
	d.ResolvedAt = &resolvedAt
	d.UpdatedAt = now
	order.ApplyStatus(nextOrder, now, note)
	oldNeedStatus := need.Status
	need.Status = nextNeed
	need.UpdatedAt = now

	ws := interfaces.WriteSet{
		Needs:    []entities.Need{need},
		Orders:   []entities.Order{order},
		Disputes: []entities.Dispute{d},
	}
	if err := commit(ctx, u.uow, ws); err != nil {
		u.log.Error("[dispute][usecase] resolve failed", "dispute_id", d.ID, "error", err)
		return entities.Dispute{}, err
	}
	d.Version++

	u.activity.record(ctx,
		activity("dispute", d.ID, string(entities.DisputeStatusPending), string(d.Status), actor, string(outcome)),
		activity("order", order.ID, string(entities.OrderStatusDisputePending), string(order.Status), actor, note),
		activity("need", need.ID, string(oldNeedStatus), string(need.Status), actor, "dispute "+d.ID),
	)
	u.log.Info("[dispute][usecase] resolved", "dispute_id", d.ID, "order_id", order.ID, "outcome", outcome)
	return d, nil
}

func (u *DisputeUseCase) loadOrderAndNeed(ctx context.Context, orderID string) (entities.Order, entities.Need, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.Need{}, ErrInvalidID
	}
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, entities.Need{}, err
	}
	if order.ID == "" {
		return entities.Order{}, entities.Need{}, ErrOrderNotFound
	}
	need, err := u.needRepo.GetByID(ctx, order.NeedID)
	if err != nil {
		return entities.Order{}, entities.Need{}, err
	}
	if need.ID == "" {
		return entities.Order{}, entities.Need{}, ErrNeedNotFound
	}
	return order, need, nil
}
