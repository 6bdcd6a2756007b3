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

var (
	ErrUserNotFound = errors.New("User not found")
	ErrUserExists   = errors.New("User already exists")
)

// buildScope copies the submitted department/lab/section names onto the user
// record. Names are accepted as-is; nothing checks them against the live
// hierarchy. Admins are unscoped.
func buildScope(req dto.AddUserRequest) []models.ScopeDepartment {
	if req.Role == models.RoleAdmin {
		return []models.ScopeDepartment{}
	}
	labs := make([]models.ScopeLab, 0, len(req.Labs))
	for _, lab := range req.Labs {
		sections := make([]models.ScopeSection, 0, len(lab.Sections))
		for _, name := range lab.Sections {
			sections = append(sections, models.ScopeSection{Name: name})
		}
		labs = append(labs, models.ScopeLab{Name: lab.LabName, Sections: sections})
	}
	return []models.ScopeDepartment{{Name: req.Department, Labs: labs}}
}

func validateUserRequest(req dto.AddUserRequest) error {
	if req.FullName == "" {
		return validationErr("Full Name is required")
	}
	if req.Email == "" {
		return validationErr("Email is required")
	}
	if req.Password == "" {
		return validationErr("Password is required")
	}
	if req.Role == "" {
		return validationErr("Role is required")
	}
	if !models.ValidRole(req.Role) {
		return validationErr("Invalid role")
	}
	if req.Role != models.RoleAdmin && req.Department == "" {
		return validationErr("Department is required")
	}
	return nil
}

// CreateUser stores the user with a bcrypt password hash and sends the
// welcome mail with the submitted credentials. The mail round-trip is
// awaited in-request; a mail failure is reported even though the user is
// already committed.
func CreateUser(ctx context.Context, db *mongo.Database, mailer *Mailer, req dto.AddUserRequest) (models.User, error) {
	if err := validateUserRequest(req); err != nil {
		return models.User{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Departments:  buildScope(req),
	}

	id, err := repository.InsertUser(ctx, db, user)
	if err != nil {
		if repository.IsDuplicateKey(err) {
			return models.User{}, ErrUserExists
		}
		return models.User{}, err
	}
	user.ID = id

	if err := mailer.Send(user.Email, nil, "Welcome! Your New Account Has Been Created",
		WelcomeMailBody(user, req.Password), nil); err != nil {
		return user, err
	}
	return user, nil
}

// EditUser replaces the whole record, scope snapshot included; the prior
// snapshot is not merged in. The user is notified of the new details.
func EditUser(ctx context.Context, db *mongo.Database, mailer *Mailer, id bson.ObjectID, req dto.AddUserRequest) (models.User, error) {
	if err := validateUserRequest(req); err != nil {
		return models.User{}, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{
		ID:           id,
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Departments:  buildScope(req),
	}

	if err := repository.ReplaceUser(ctx, db, user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}

	if err := mailer.Send(user.Email, nil, "Your Details Have Been Updated",
		UpdateMailBody(user, req.Password), nil); err != nil {
		return user, err
	}
	return user, nil
}
