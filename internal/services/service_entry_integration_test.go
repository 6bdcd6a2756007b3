package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/rutamk/dsr-final/dto"
	"github.com/rutamk/dsr-final/internal/models"
	"github.com/rutamk/dsr-final/internal/repository"
)

// These tests run against a real MongoDB, set MONGO_TEST_URI to enable them.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	require.NoError(t, err)

	db := client.Database("dsr_test")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return db
}

func testCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func seedDepartment(t *testing.T, ctx context.Context, db *mongo.Database) models.Department {
	t.Helper()
	dept, err := CreateDepartment(ctx, db, models.Department{
		DeptName: "CS",
		Labs: []models.Lab{
			{
				LabName:  "Networking",
				Sections: []models.Section{{SectionName: "A", DSREntries: []models.DSREntry{}}},
			},
		},
	})
	require.NoError(t, err)
	return dept
}

func TestCreateDepartmentPersistsNestedCounts(t *testing.T) {
	db := testDB(t)
	ctx := testCtx(t)

	created, err := CreateDepartment(ctx, db, models.Department{
		DeptName: "IT",
		Labs: []models.Lab{
			{LabName: "L1", Sections: []models.Section{{SectionName: "A"}, {SectionName: "B"}}},
			{LabName: "L2", Sections: []models.Section{{SectionName: "A"}}},
		},
	})
	require.NoError(t, err)

	stored, err := repository.FindDepartmentByID(ctx, db, created.ID)
	require.NoError(t, err)
	require.Len(t, stored.Labs, 2)
	assert.Len(t, stored.Labs[0].Sections, 2)
	assert.Len(t, stored.Labs[1].Sections, 1)
}

func TestDeleteLabTwiceReturnsNotFound(t *testing.T) {
	db := testDB(t)
	ctx := testCtx(t)
	dept := seedDepartment(t, ctx, db)

	labID := dept.Labs[0].ID
	require.NoError(t, DeleteLab(ctx, db, dept.ID, labID))
	assert.ErrorIs(t, DeleteLab(ctx, db, dept.ID, labID), ErrLabNotFound)
}

func TestEntryLifecycle(t *testing.T) {
	db := testDB(t)
	ctx := testCtx(t)
	seedDepartment(t, ctx, db)

	entry, err := AddEntry(ctx, db, "CS", "Networking", "A", models.DSREntry{
		ComponentName:       "Switch",
		Config:              "48 port",
		Model:               "C2960",
		Pod:                 "P1",
		Vendor:              "Cisco",
		PurchaseOrderNum:    4711,
		Quantity:            2,
		PerUnitPrice:        100,
		TotalPrice:          200,
		BalanceAmt:          0,
		Status:              "Working",
		LocationOfComponent: "Rack 3",
		ValidatedBy:         "Lab Incharge",
	})
	require.NoError(t, err)
	require.False(t, entry.ID.IsZero())

	entries, err := GetAllEntries(ctx, db, "CS", "Networking", "A")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Switch", entries[0].ComponentName)
	// stored exactly as submitted: 2 * 100 = 200 was computed by the caller
	assert.Equal(t, float64(200), entries[0].TotalPrice)

	require.NoError(t, DeleteEntry(ctx, db, entry.ID, "CS", "Networking", "A"))

	entries, err = GetAllEntries(ctx, db, "CS", "Networking", "A")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAddEntryNamesMissingLevel(t *testing.T) {
	db := testDB(t)
	ctx := testCtx(t)
	seedDepartment(t, ctx, db)

	_, err := AddEntry(ctx, db, "EE", "Networking", "A", models.DSREntry{ComponentName: "Switch"})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)

	_, err = AddEntry(ctx, db, "CS", "Robotics", "A", models.DSREntry{ComponentName: "Switch"})
	assert.ErrorIs(t, err, ErrLabNotFound)

	_, err = AddEntry(ctx, db, "CS", "Networking", "Z", models.DSREntry{ComponentName: "Switch"})
	assert.ErrorIs(t, err, ErrSectionNotFound)
}

func TestUpdateEntryPreservesUnpatchedFields(t *testing.T) {
	db := testDB(t)
	ctx := testCtx(t)
	seedDepartment(t, ctx, db)

	entry, err := AddEntry(ctx, db, "CS", "Networking", "A", completeEntry())
	require.NoError(t, err)

	newVendor := "HP"
	updated, err := UpdateEntry(ctx, db, entry.ID, dto.UpdateEntryRequest{
		SelectedDept:    "CS",
		SelectedLab:     "Networking",
		SelectedSection: "A",
		Vendor:          &newVendor,
	})
	require.NoError(t, err)

	assert.Equal(t, "HP", updated.Vendor)
	assert.Equal(t, "Switch", updated.ComponentName)
	assert.Equal(t, "48 port", updated.Config)
	assert.Equal(t, 2, updated.Quantity)
}

func TestAddEntryRejectsIncompleteEntry(t *testing.T) {
	db := testDB(t)
	ctx := testCtx(t)
	seedDepartment(t, ctx, db)

	incomplete := completeEntry()
	incomplete.Vendor = ""
	_, err := AddEntry(ctx, db, "CS", "Networking", "A", incomplete)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Vendor is required", ve.Message)

	entries, err := GetAllEntries(ctx, db, "CS", "Networking", "A")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAuthenticateIndistinguishableFailures(t *testing.T) {
	db := testDB(t)
	ctx := testCtx(t)

	hash, err := HashPassword("right_pw1!")
	require.NoError(t, err)
	_, err = repository.InsertUser(ctx, db, models.User{
		FullName:     "Ananya Kulkarni",
		Email:        "ananya.k@vit.edu.in",
		PasswordHash: hash,
		Role:         models.RoleHOD,
	})
	require.NoError(t, err)

	_, errWrongPw := Authenticate(ctx, db, "ananya.k@vit.edu.in", "wrong_pw")
	_, errNoUser := Authenticate(ctx, db, "nobody@vit.edu.in", "right_pw1!")

	require.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPw.Error(), errNoUser.Error())
}

func TestDeleteDepartmentLeavesScopedUsers(t *testing.T) {
	db := testDB(t)
	ctx := testCtx(t)
	dept := seedDepartment(t, ctx, db)

	hash, err := HashPassword("pw_123456!")
	require.NoError(t, err)
	userID, err := repository.InsertUser(ctx, db, models.User{
		FullName:     "Rohan Mehta",
		Email:        "rohan.m@vit.edu.in",
		PasswordHash: hash,
		Role:         models.RoleLabAssistant,
		Departments: []models.ScopeDepartment{
			{Name: "CS", Labs: []models.ScopeLab{{Name: "Networking", Sections: []models.ScopeSection{{Name: "A"}}}}},
		},
	})
	require.NoError(t, err)

	require.NoError(t, DeleteDepartment(ctx, db, dept.ID))

	// the scope snapshot still names the dead department
	user, err := repository.FindUserByID(ctx, db, userID)
	require.NoError(t, err)
	require.Len(t, user.Departments, 1)
	assert.Equal(t, "CS", user.Departments[0].Name)
}
