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

// NeedInput carries the buyer-provided fields of a new need.
type NeedInput struct {
	Title       string
	Description string
	Category    string
	BudgetMin   *float64
	BudgetMax   *float64
	Location    string
}

// NeedPatch is a shallow merge: nil fields are left untouched.
type NeedPatch struct {
	Title       *string
	Description *string
	Category    *string
	BudgetMin   *float64
	BudgetMax   *float64
	Location    *string
	Status      *entities.NeedStatus
}

// INeedUseCase exposes the buyer-facing need operations.
type INeedUseCase interface {
	Create(ctx context.Context, actor entities.Actor, input NeedInput) (entities.Need, error)
	GetByID(ctx context.Context, id string) (entities.Need, error)
	List(ctx context.Context, filter entities.NeedFilter) ([]entities.Need, error)
	ListMine(ctx context.Context, actor entities.Actor) ([]entities.Need, error)
	Update(ctx context.Context, actor entities.Actor, id string, patch NeedPatch) (entities.Need, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
}

type NeedUseCase struct {
	repo      interfaces.INeedRepository
	offerRepo interfaces.IOfferRepository
	uow       interfaces.IUnitOfWork
	activity activityRecorder
	log      *logger.Logger
}

var _ INeedUseCase = (*NeedUseCase)(nil)

func NewNeedUseCase(repo interfaces.INeedRepository, offerRepo interfaces.IOfferRepository, uow interfaces.IUnitOfWork, activityLog interfaces.IActivityLog, log *logger.Logger) *NeedUseCase {
	log = log.With("usecase", "need")
	return &NeedUseCase{
		repo:      repo,
		offerRepo: offerRepo,
		uow:       uow,
		activity:  activityRecorder{sink: activityLog, log: log},
		log:       log,
	}
}

func (u *NeedUseCase) Create(ctx context.Context, actor entities.Actor, input NeedInput) (entities.Need, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return entities.Need{}, ErrInvalidNeedTitle
	}
	if strings.TrimSpace(input.Category) == "" {
		return entities.Need{}, ErrInvalidNeedCategory
	}
	if err := validateBudget(input.BudgetMin, input.BudgetMax); err != nil {
		return entities.Need{}, err
	}
	if strings.TrimSpace(actor.ID) == "" {
		return entities.Need{}, ErrForbidden
	}

	now := time.Now().UTC()
	n := entities.Need{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    entities.NormalizeCategory(input.Category),
		BudgetMin:   input.BudgetMin,
		BudgetMax:   input.BudgetMax,
		Location:    strings.TrimSpace(input.Location),
		Status:      entities.NeedStatusOpen,
		BuyerID:     actor.ID,
		BuyerName:   actor.Name,
		BuyerEmail:  actor.Email,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := commit(ctx, u.uow, interfaces.WriteSet{Needs: []entities.Need{n}}); err != nil {
		u.log.Error("[need][usecase] create failed", "need_id", n.ID, "error", err)
		return entities.Need{}, err
	}
	n.Version++
	u.log.Info("[need][usecase] created", "need_id", n.ID, "category", n.Category, "buyer_id", n.BuyerID)
	return n, nil
}

func (u *NeedUseCase) GetByID(ctx context.Context, id string) (entities.Need, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Need{}, ErrInvalidID
	}
	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Need{}, err
	}
	if n.ID == "" {
		return entities.Need{}, ErrNeedNotFound
	}
	return n, nil
}

func (u *NeedUseCase) List(ctx context.Context, filter entities.NeedFilter) ([]entities.Need, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, ErrInvalidNeedStatus
	}
	if filter.Category != "" {
		filter.Category = entities.NormalizeCategory(filter.Category)
	}
	needs, err := u.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sortNeedsNewestFirst(needs)
	return needs, nil
}

func (u *NeedUseCase) ListMine(ctx context.Context, actor entities.Actor) ([]entities.Need, error) {
	if strings.TrimSpace(actor.ID) == "" {
		return nil, ErrForbidden
	}
	needs, err := u.repo.ListByBuyerID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	sortNeedsNewestFirst(needs)
	return needs, nil
}

func (u *NeedUseCase) Update(ctx context.Context, actor entities.Actor, id string, patch NeedPatch) (entities.Need, error) {
	n, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Need{}, err
	}
	if n.BuyerID != actor.ID {
		return entities.Need{}, ErrForbidden
	}

	oldStatus := n.Status
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return entities.Need{}, ErrInvalidNeedTitle
		}
		n.Title = title
	}
	if patch.Description != nil {
		n.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Category != nil {
		if strings.TrimSpace(*patch.Category) == "" {
			return entities.Need{}, ErrInvalidNeedCategory
		}
		n.Category = entities.NormalizeCategory(*patch.Category)
	}
	if patch.BudgetMin != nil {
		n.BudgetMin = patch.BudgetMin
	}
	if patch.BudgetMax != nil {
		n.BudgetMax = patch.BudgetMax
	}
	if err := validateBudget(n.BudgetMin, n.BudgetMax); err != nil {
		return entities.Need{}, err
	}
	if patch.Location != nil {
		n.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Status != nil {
		next := *patch.Status
		if !next.IsValid() {
			return entities.Need{}, ErrInvalidNeedStatus
		}
		// Every other status is driven by the order and dispute flows.
		buyerSettable := next == n.Status || next == entities.NeedStatusClosed
		if !buyerSettable || !n.Status.CanTransitionTo(next) {
			u.log.Warn("[need][usecase] illegal transition", "need_id", n.ID, "from", n.Status, "to", next)
			return entities.Need{}, ErrIllegalTransition
		}
		n.Status = next
	}
	n.UpdatedAt = time.Now().UTC()

	if err := commit(ctx, u.uow, interfaces.WriteSet{Needs: []entities.Need{n}}); err != nil {
		u.log.Error("[need][usecase] update failed", "need_id", n.ID, "error", err)
		return entities.Need{}, err
	}
	n.Version++
	if oldStatus != n.Status {
		u.activity.record(ctx, activity("need", n.ID, string(oldStatus), string(n.Status), actor, "updated by buyer"))
	}
	return n, nil
}

// Delete hard-deletes a need. Only open needs can go; anything further along
// is referenced by orders. Pending offers on it are declined in the same
// commit so sellers do not keep waiting on a need that is gone.
func (u *NeedUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	n, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if n.BuyerID != actor.ID {
		return ErrForbidden
	}
	if n.Status != entities.NeedStatusOpen {
		return ErrNeedNotOpen
	}

	offers, err := u.offerRepo.ListByNeedID(ctx, n.ID)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	ws := interfaces.WriteSet{DeletedNeeds: []entities.Need{n}}
	for _, o := range offers {
		if o.Status != entities.OfferStatusPending {
			continue
		}
		o.Status = entities.OfferStatusDeclined
		o.UpdatedAt = now
		ws.Offers = append(ws.Offers, o)
	}

	if err := commit(ctx, u.uow, ws); err != nil {
		u.log.Error("[need][usecase] delete failed", "need_id", n.ID, "error", err)
		return err
	}

	entries := []entities.ActivityEntry{activity("need", n.ID, string(n.Status), "deleted", actor, "deleted by buyer")}
	for _, o := range ws.Offers {
		entries = append(entries, activity("offer", o.ID, string(entities.OfferStatusPending), string(o.Status), actor, "need deleted"))
	}
	u.activity.record(ctx, entries...)
	u.log.Info("[need][usecase] deleted", "need_id", n.ID, "declined_offers", len(ws.Offers))
	return nil
}

func validateBudget(min, max *float64) error {
	if min != nil && *min < 0 {
		return ErrInvalidBudget
	}
	if max != nil && *max < 0 {
		return ErrInvalidBudget
	}
	if min != nil && max != nil && *min > *max {
		return ErrInvalidBudget
	}
	return nil
}

func sortNeedsNewestFirst(needs []entities.Need) {
	sort.SliceStable(needs, func(i, j int) bool { return needs[i].CreatedAt.After(needs[j].CreatedAt) })
}
