package request

import (
	"strings"

	"marketplace_escrow/internal/domain/entities"
	"marketplace_escrow/internal/usecase"
)

type CreateNeedRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" binding:"required"`
	BudgetMin   *float64 `json:"budgetMin"`
	BudgetMax   *float64 `json:"budgetMax"`
	Location    string   `json:"location"`
}

func (r CreateNeedRequest) ToInput() usecase.NeedInput {
	return usecase.NeedInput{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		BudgetMin:   r.BudgetMin,
		BudgetMax:   r.BudgetMax,
		Location:    r.Location,
	}
}

// UpdateNeedRequest is a partial update; absent fields keep their value.
type UpdateNeedRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	BudgetMin   *float64 `json:"budgetMin"`
	BudgetMax   *float64 `json:"budgetMax"`
	Location    *string  `json:"location"`
	Status      *string  `json:"status"`
}

func (r UpdateNeedRequest) ToPatch() usecase.NeedPatch {
	patch := usecase.NeedPatch{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		BudgetMin:   r.BudgetMin,
		BudgetMax:   r.BudgetMax,
		Location:    r.Location,
	}
	if r.Status != nil {
		s := entities.NeedStatus(strings.ToLower(strings.TrimSpace(*r.Status)))
		patch.Status = &s
	}
	return patch
}

// NeedListQuery binds GET /needs filters.
type NeedListQuery struct {
	Status   string `form:"status"`
	Category string `form:"category"`
	Search   string `form:"search"`
	BuyerID  string `form:"buyerId"`
}

func (q NeedListQuery) ToFilter() entities.NeedFilter {
	f := entities.NeedFilter{
		Status:  entities.NeedStatus(strings.ToLower(strings.TrimSpace(q.Status))),
		Search:  q.Search,
		BuyerID: strings.TrimSpace(q.BuyerID),
	}
	if c := strings.TrimSpace(q.Category); c != "" {
		f.Category = entities.NormalizeCategory(c)
	}
	return f
}
