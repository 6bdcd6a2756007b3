package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleLabAssistant = "Lab Assistant"
	RoleLabIncharge  = "Lab Incharge"
	RoleHOD          = "HOD"
	RoleAdmin        = "Admin"
)

func ValidRole(role string) bool {
	switch role {
	case RoleLabAssistant, RoleLabIncharge, RoleHOD, RoleAdmin:
		return true
	}
	return false
}

// ScopeSection / ScopeLab / ScopeDepartment are the denormalized snapshot of
// the hierarchy a user may touch. Names are copied strings, not references:
// renaming or deleting a department never cascades into these.
type ScopeSection struct {
	Name string `bson:"name" json:"name"`
}

type ScopeLab struct {
	Name     string         `bson:"name" json:"name"`
	Sections []ScopeSection `bson:"sections" json:"sections"`
}

type ScopeDepartment struct {
	Name string     `bson:"name" json:"name"`
	Labs []ScopeLab `bson:"labs" json:"labs"`
}

type User struct {
	ID           bson.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	FullName     string            `bson:"fullName" json:"fullName"`
	Email        string            `bson:"email" json:"email"`
	PasswordHash string            `bson:"password,omitempty" json:"-"`
	Role         string            `bson:"role" json:"role"`
	Departments  []ScopeDepartment `bson:"departments" json:"departments"`
}
