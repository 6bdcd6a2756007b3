package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutamk/dsr-final/dto"
	"github.com/rutamk/dsr-final/internal/models"
)

func TestBuildScope(t *testing.T) {
	scope := buildScope(dto.AddUserRequest{
		Role:       models.RoleLabAssistant,
		Department: "CS",
		Labs: []dto.UserLab{
			{LabName: "Networking", Sections: []string{"A", "B"}},
			{LabName: "Security", Sections: []string{"A"}},
		},
	})

	require.Len(t, scope, 1)
	assert.Equal(t, "CS", scope[0].Name)
	require.Len(t, scope[0].Labs, 2)
	assert.Equal(t, "Networking", scope[0].Labs[0].Name)
	assert.Equal(t, []models.ScopeSection{{Name: "A"}, {Name: "B"}}, scope[0].Labs[0].Sections)
	assert.Equal(t, "Security", scope[0].Labs[1].Name)
}

func TestBuildScopeAdminIsUnscoped(t *testing.T) {
	scope := buildScope(dto.AddUserRequest{
		Role:       models.RoleAdmin,
		Department: "CS",
		Labs:       []dto.UserLab{{LabName: "Networking", Sections: []string{"A"}}},
	})
	assert.Empty(t, scope)
}

func TestValidateUserRequest(t *testing.T) {
	base := dto.AddUserRequest{
		FullName:   "Rohan Mehta",
		Email:      "rohan.m@vit.edu.in",
		Password:   "pw_123456!",
		Role:       models.RoleLabIncharge,
		Department: "CS",
	}
	assert.NoError(t, validateUserRequest(base))

	bad := base
	bad.Role = "Superman"
	err := validateUserRequest(bad)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid role", ve.Message)

	noDept := base
	noDept.Department = ""
	err = validateUserRequest(noDept)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Department is required", ve.Message)

	admin := base
	admin.Role = models.RoleAdmin
	admin.Department = ""
	assert.NoError(t, validateUserRequest(admin))
}
