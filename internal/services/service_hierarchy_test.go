package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rutamk/dsr-final/internal/models"
)

func TestValidateDepartmentStructure(t *testing.T) {
	valid := models.Department{
		DeptName: "CS",
		Labs: []models.Lab{
			{
				LabName:  "Networking",
				Sections: []models.Section{{SectionName: "A"}},
			},
		},
	}
	assert.NoError(t, ValidateDepartmentStructure(valid))
}

func TestValidateDepartmentStructureFirstViolation(t *testing.T) {
	cases := []struct {
		name string
		dept models.Department
		msg  string
	}{
		{
			name: "empty department name",
			dept: models.Department{},
			msg:  "Department name is required",
		},
		{
			name: "empty lab name",
			dept: models.Department{
				DeptName: "CS",
				Labs:     []models.Lab{{Sections: []models.Section{{SectionName: "A"}}}},
			},
			msg: "Lab name is required",
		},
		{
			name: "lab without sections",
			dept: models.Department{
				DeptName: "CS",
				Labs:     []models.Lab{{LabName: "Networking"}},
			},
			msg: "Lab must have at least one section",
		},
		{
			name: "empty section name",
			dept: models.Department{
				DeptName: "CS",
				Labs: []models.Lab{
					{LabName: "Networking", Sections: []models.Section{{}}},
				},
			},
			msg: "Section name is required",
		},
		{
			name: "second lab broken, first fine",
			dept: models.Department{
				DeptName: "CS",
				Labs: []models.Lab{
					{LabName: "Networking", Sections: []models.Section{{SectionName: "A"}}},
					{LabName: "Systems"},
				},
			},
			msg: "Lab must have at least one section",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDepartmentStructure(tc.dept)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.msg, ve.Message)
		})
	}
}
