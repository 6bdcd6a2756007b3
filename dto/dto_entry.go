package dto

import "github.com/rutamk/dsr-final/internal/models"

// ===== Request =====

// AddEntryRequest carries the selector names alongside the entry fields, the
// same flat shape the table form submits.
type AddEntryRequest struct {
	SelectedDept    string `json:"selectedDept"`
	SelectedLab     string `json:"selectedLab"`
	SelectedSection string `json:"selectedSection"`

	ComponentName       string  `json:"componentName"`
	Config              string  `json:"config"`
	Model               string  `json:"model"`
	Pod                 string  `json:"pod"`
	Vendor              string  `json:"vendor"`
	PurchaseOrderNum    int64   `json:"purchaseOrderNum"`
	TotalPrice          float64 `json:"totalPrice"`
	PerUnitPrice        float64 `json:"perUnitPrice"`
	BalanceAmt          float64 `json:"balanceAmt"`
	Quantity            int     `json:"quantity"`
	Status              string  `json:"status"`
	LocationOfComponent string  `json:"locationOfComponent"`
	ValidatedBy         string  `json:"validatedBy"`
	Comments            string  `json:"comments,omitempty"`
}

func (r AddEntryRequest) Entry() models.DSREntry {
	return models.DSREntry{
		ComponentName:       r.ComponentName,
		Config:              r.Config,
		Model:               r.Model,
		Pod:                 r.Pod,
		Vendor:              r.Vendor,
		PurchaseOrderNum:    r.PurchaseOrderNum,
		TotalPrice:          r.TotalPrice,
		PerUnitPrice:        r.PerUnitPrice,
		BalanceAmt:          r.BalanceAmt,
		Quantity:            r.Quantity,
		Status:              r.Status,
		LocationOfComponent: r.LocationOfComponent,
		ValidatedBy:         r.ValidatedBy,
		Comments:            r.Comments,
	}
}

// UpdateEntryRequest is a shallow patch: nil fields are left as stored.
type UpdateEntryRequest struct {
	SelectedDept    string `json:"selectedDept"`
	SelectedLab     string `json:"selectedLab"`
	SelectedSection string `json:"selectedSection"`

	ComponentName       *string  `json:"componentName,omitempty"`
	Config              *string  `json:"config,omitempty"`
	Model               *string  `json:"model,omitempty"`
	Pod                 *string  `json:"pod,omitempty"`
	Vendor              *string  `json:"vendor,omitempty"`
	PurchaseOrderNum    *int64   `json:"purchaseOrderNum,omitempty"`
	TotalPrice          *float64 `json:"totalPrice,omitempty"`
	PerUnitPrice        *float64 `json:"perUnitPrice,omitempty"`
	BalanceAmt          *float64 `json:"balanceAmt,omitempty"`
	Quantity            *int     `json:"quantity,omitempty"`
	Status              *string  `json:"status,omitempty"`
	LocationOfComponent *string  `json:"locationOfComponent,omitempty"`
	ValidatedBy         *string  `json:"validatedBy,omitempty"`
	Comments            *string  `json:"comments,omitempty"`
}

// ApplyTo merges the patch over the stored entry, field by field.
func (r UpdateEntryRequest) ApplyTo(e *models.DSREntry) {
	if r.ComponentName != nil {
		e.ComponentName = *r.ComponentName
	}
	if r.Config != nil {
		e.Config = *r.Config
	}
	if r.Model != nil {
		e.Model = *r.Model
	}
	if r.Pod != nil {
		e.Pod = *r.Pod
	}
	if r.Vendor != nil {
		e.Vendor = *r.Vendor
	}
	if r.PurchaseOrderNum != nil {
		e.PurchaseOrderNum = *r.PurchaseOrderNum
	}
	if r.TotalPrice != nil {
		e.TotalPrice = *r.TotalPrice
	}
	if r.PerUnitPrice != nil {
		e.PerUnitPrice = *r.PerUnitPrice
	}
	if r.BalanceAmt != nil {
		e.BalanceAmt = *r.BalanceAmt
	}
	if r.Quantity != nil {
		e.Quantity = *r.Quantity
	}
	if r.Status != nil {
		e.Status = *r.Status
	}
	if r.LocationOfComponent != nil {
		e.LocationOfComponent = *r.LocationOfComponent
	}
	if r.ValidatedBy != nil {
		e.ValidatedBy = *r.ValidatedBy
	}
	if r.Comments != nil {
		e.Comments = *r.Comments
	}
}

// ===== Success Response =====
type EntriesResponse struct {
	Entries []models.DSREntry `json:"entries"`
}
