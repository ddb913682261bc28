package entities

import "strings"

const CategoryOther = "other"

// Workflow types drive how an order is fulfilled.
const (
	WorkflowOnSite         = "on_site_service"
	WorkflowPickupDelivery = "pickup_delivery"
	WorkflowRemote         = "remote_service"
	WorkflowStandard       = "standard"
)

var categoryWorkflows = map[string]string{
	"plumbing":     WorkflowOnSite,
	"electrical":   WorkflowOnSite,
	"cleaning":     WorkflowOnSite,
	"repairs":      WorkflowOnSite,
	"gardening":    WorkflowOnSite,
	"moving":       WorkflowPickupDelivery,
	"delivery":     WorkflowPickupDelivery,
	"design":       WorkflowRemote,
	"tutoring":     WorkflowRemote,
	"tech_support": WorkflowRemote,
	CategoryOther:  WorkflowStandard,
}

// NormalizeCategory folds case and maps unknown categories to "other".
func NormalizeCategory(c string) string {
	c = strings.ToLower(strings.TrimSpace(c))
	if _, ok := categoryWorkflows[c]; ok {
		return c
	}
	return CategoryOther
}

func WorkflowTypeFor(category string) string {
	return categoryWorkflows[NormalizeCategory(category)]
}
