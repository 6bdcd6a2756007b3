package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rutamk/dsr-final/internal/models"
	"github.com/rutamk/dsr-final/internal/repository"
)

var (
	ErrDepartmentNotFound = errors.New("Department not found")
	ErrLabNotFound        = errors.New("Lab not found")
	ErrSectionNotFound    = errors.New("Section not found")
)

// ValidationError reports the first violated constraint of a payload.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func validationErr(msg string) error { return &ValidationError{Message: msg} }

// ValidateDepartmentStructure checks a department payload before anything is
// persisted and stops at the first violation.
func ValidateDepartmentStructure(dept models.Department) error {
	if dept.DeptName == "" {
		return validationErr("Department name is required")
	}
	for _, lab := range dept.Labs {
		if lab.LabName == "" {
			return validationErr("Lab name is required")
		}
		if len(lab.Sections) == 0 {
			return validationErr("Lab must have at least one section")
		}
		for _, sec := range lab.Sections {
			if sec.SectionName == "" {
				return validationErr("Section name is required")
			}
		}
	}
	return nil
}

func CreateDepartment(ctx context.Context, db *mongo.Database, dept models.Department) (models.Department, error) {
	if err := ValidateDepartmentStructure(dept); err != nil {
		return models.Department{}, err
	}
	dept.AssignIDs()
	if err := repository.InsertDepartment(ctx, db, dept); err != nil {
		return models.Department{}, err
	}
	return dept, nil
}

// EditDepartment is a whole-document replace; no field diffing, no version
// check. Concurrent edits of the same department silently overwrite.
func EditDepartment(ctx context.Context, db *mongo.Database, id bson.ObjectID, dept models.Department) (models.Department, error) {
	dept.ID = id
	dept.AssignIDs()
	if err := repository.ReplaceDepartment(ctx, db, dept); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Department{}, ErrDepartmentNotFound
		}
		return models.Department{}, err
	}
	return dept, nil
}

// DeleteDepartment removes the aggregate unconditionally. Users whose scope
// snapshot still names this department are left untouched.
func DeleteDepartment(ctx context.Context, db *mongo.Database, id bson.ObjectID) error {
	deleted, err := repository.DeleteDepartment(ctx, db, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrDepartmentNotFound
	}
	return nil
}

func AddLab(ctx context.Context, db *mongo.Database, deptID bson.ObjectID, labName string) (models.Department, error) {
	if labName == "" {
		return models.Department{}, validationErr("Lab name is required")
	}
	dept, err := repository.FindDepartmentByID(ctx, db, deptID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Department{}, ErrDepartmentNotFound
		}
		return models.Department{}, err
	}
	dept.Labs = append(dept.Labs, models.Lab{
		ID:       bson.NewObjectID(),
		LabName:  labName,
		Sections: []models.Section{},
	})
	if err := repository.ReplaceDepartment(ctx, db, dept); err != nil {
		return models.Department{}, err
	}
	return dept, nil
}

func DeleteLab(ctx context.Context, db *mongo.Database, deptID, labID bson.ObjectID) error {
	dept, err := repository.FindDepartmentByID(ctx, db, deptID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDepartmentNotFound
		}
		return err
	}
	if !dept.RemoveLab(labID) {
		return ErrLabNotFound
	}
	return repository.ReplaceDepartment(ctx, db, dept)
}

func AddSection(ctx context.Context, db *mongo.Database, deptID, labID bson.ObjectID, sectionName string) (models.Department, error) {
	if sectionName == "" {
		return models.Department{}, validationErr("Section name is required")
	}
	dept, err := repository.FindDepartmentByID(ctx, db, deptID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Department{}, ErrDepartmentNotFound
		}
		return models.Department{}, err
	}
	lab := dept.LabByID(labID)
	if lab == nil {
		return models.Department{}, ErrLabNotFound
	}
	lab.Sections = append(lab.Sections, models.Section{
		ID:          bson.NewObjectID(),
		SectionName: sectionName,
		DSREntries:  []models.DSREntry{},
	})
	if err := repository.ReplaceDepartment(ctx, db, dept); err != nil {
		return models.Department{}, err
	}
	return dept, nil
}

func DeleteSection(ctx context.Context, db *mongo.Database, deptID, labID, sectionID bson.ObjectID) error {
	dept, err := repository.FindDepartmentByID(ctx, db, deptID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrDepartmentNotFound
		}
		return err
	}
	lab := dept.LabByID(labID)
	if lab == nil {
		return ErrLabNotFound
	}
	if !lab.RemoveSection(sectionID) {
		return ErrSectionNotFound
	}
	return repository.ReplaceDepartment(ctx, db, dept)
}
