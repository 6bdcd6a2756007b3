package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/dto"
	"github.com/rutamk/dsr-final/internal/models"
	"github.com/rutamk/dsr-final/internal/repository"
)

var ErrEntryNotFound = errors.New("DSR entry not found")

// ValidateEntry enforces the register's required fields: everything except
// comments. Numeric fields accept zero, matching the stored schema.
func ValidateEntry(entry models.DSREntry) error {
	required := []struct {
		value, label string
	}{
		{entry.ComponentName, "Component name"},
		{entry.Config, "Config"},
		{entry.Model, "Model"},
		{entry.Pod, "Pod"},
		{entry.Vendor, "Vendor"},
		{entry.Status, "Status"},
		{entry.LocationOfComponent, "Location of component"},
		{entry.ValidatedBy, "Validated by"},
	}
	for _, f := range required {
		if f.value == "" {
			return validationErr(f.label + " is required")
		}
	}
	return nil
}

// locateSection walks department -> lab -> section by name, the same way the
// client addresses its dropdown selection. The error names whichever level
// failed to match.
func locateSection(ctx context.Context, db *mongo.Database, deptName, labName, sectionName string) (models.Department, *models.Section, error) {
	dept, err := repository.FindDepartmentByName(ctx, db, deptName)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Department{}, nil, ErrDepartmentNotFound
		}
		return models.Department{}, nil, err
	}
	lab := dept.LabByName(labName)
	if lab == nil {
		return models.Department{}, nil, ErrLabNotFound
	}
	section := lab.SectionByName(sectionName)
	if section == nil {
		return models.Department{}, nil, ErrSectionNotFound
	}
	return dept, section, nil
}

// GetAllEntries returns the entries of the addressed section, or an empty
// list when any level of the name path does not match. The old backend
// answered these lookups with an empty table, not a 404.
func GetAllEntries(ctx context.Context, db *mongo.Database, deptName, labName, sectionName string) ([]models.DSREntry, error) {
	_, section, err := locateSection(ctx, db, deptName, labName, sectionName)
	if err != nil {
		switch {
		case errors.Is(err, ErrDepartmentNotFound),
			errors.Is(err, ErrLabNotFound),
			errors.Is(err, ErrSectionNotFound):
			return []models.DSREntry{}, nil
		}
		return nil, err
	}
	if section.DSREntries == nil {
		return []models.DSREntry{}, nil
	}
	return section.DSREntries, nil
}

// AddEntry appends an entry to the addressed section and saves the whole
// department aggregate back. totalPrice is stored as submitted; the server
// does not recompute it from perUnitPrice and quantity.
func AddEntry(ctx context.Context, db *mongo.Database, deptName, labName, sectionName string, entry models.DSREntry) (models.DSREntry, error) {
	dept, section, err := locateSection(ctx, db, deptName, labName, sectionName)
	if err != nil {
		return models.DSREntry{}, err
	}
	if err := ValidateEntry(entry); err != nil {
		return models.DSREntry{}, err
	}
	entry.ID = bson.NewObjectID()
	section.DSREntries = append(section.DSREntries, entry)
	if err := repository.ReplaceDepartment(ctx, db, dept); err != nil {
		return models.DSREntry{}, err
	}
	return entry, nil
}

// UpdateEntry merges the patch shallowly over the stored entry: fields absent
// from the patch keep their stored values.
func UpdateEntry(ctx context.Context, db *mongo.Database, entryID bson.ObjectID, patch dto.UpdateEntryRequest) (models.DSREntry, error) {
	dept, section, err := locateSection(ctx, db, patch.SelectedDept, patch.SelectedLab, patch.SelectedSection)
	if err != nil {
		return models.DSREntry{}, err
	}
	i := section.EntryIndex(entryID)
	if i < 0 {
		return models.DSREntry{}, ErrEntryNotFound
	}
	patch.ApplyTo(&section.DSREntries[i])
	if err := repository.ReplaceDepartment(ctx, db, dept); err != nil {
		return models.DSREntry{}, err
	}
	return section.DSREntries[i], nil
}

func DeleteEntry(ctx context.Context, db *mongo.Database, entryID bson.ObjectID, deptName, labName, sectionName string) error {
	dept, section, err := locateSection(ctx, db, deptName, labName, sectionName)
	if err != nil {
		return err
	}
	if !section.RemoveEntry(entryID) {
		return ErrEntryNotFound
	}
	return repository.ReplaceDepartment(ctx, db, dept)
}
