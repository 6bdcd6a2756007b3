package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rutamk/dsr-final/internal/models"
)

func TestUpdateEntryRequestApplyToMergesShallowly(t *testing.T) {
	stored := models.DSREntry{
		ComponentName:       "Switch",
		Config:              "48 port",
		Model:               "C2960",
		Vendor:              "Cisco",
		Quantity:            2,
		PerUnitPrice:        100,
		TotalPrice:          200,
		Status:              "Working",
		LocationOfComponent: "Rack 3",
		ValidatedBy:         "Lab Incharge",
	}

	newStatus := "Under Repair"
	patch := UpdateEntryRequest{Status: &newStatus}
	patch.ApplyTo(&stored)

	// only the patched field changes
	assert.Equal(t, "Under Repair", stored.Status)
	assert.Equal(t, "Switch", stored.ComponentName)
	assert.Equal(t, "48 port", stored.Config)
	assert.Equal(t, 2, stored.Quantity)
	assert.Equal(t, float64(200), stored.TotalPrice)
}

func TestUpdateEntryRequestApplyToZeroValues(t *testing.T) {
	stored := models.DSREntry{Quantity: 5, Comments: "spare"}

	zero := 0
	empty := ""
	patch := UpdateEntryRequest{Quantity: &zero, Comments: &empty}
	patch.ApplyTo(&stored)

	// explicit zero values are applied, not treated as absent
	assert.Equal(t, 0, stored.Quantity)
	assert.Equal(t, "", stored.Comments)
}

func TestAddEntryRequestEntry(t *testing.T) {
	req := AddEntryRequest{
		SelectedDept:     "CS",
		SelectedLab:      "Networking",
		SelectedSection:  "A",
		ComponentName:    "Switch",
		Quantity:         2,
		PerUnitPrice:     100,
		TotalPrice:       200,
		PurchaseOrderNum: 4711,
	}

	entry := req.Entry()

	assert.Equal(t, "Switch", entry.ComponentName)
	assert.Equal(t, 2, entry.Quantity)
	// totalPrice is carried over as submitted, never recomputed
	assert.Equal(t, float64(200), entry.TotalPrice)
	assert.True(t, entry.ID.IsZero())
}
