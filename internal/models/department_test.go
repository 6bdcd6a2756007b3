package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func sampleDepartment() Department {
	return Department{
		ID:       bson.NewObjectID(),
		DeptName: "CS",
		Labs: []Lab{
			{
				ID:      bson.NewObjectID(),
				LabName: "Networking",
				Sections: []Section{
					{ID: bson.NewObjectID(), SectionName: "A", DSREntries: []DSREntry{}},
					{ID: bson.NewObjectID(), SectionName: "B", DSREntries: []DSREntry{}},
				},
			},
			{
				ID:      bson.NewObjectID(),
				LabName: "Systems",
				Sections: []Section{
					{ID: bson.NewObjectID(), SectionName: "A", DSREntries: []DSREntry{}},
				},
			},
		},
	}
}

func TestLabByName(t *testing.T) {
	dept := sampleDepartment()

	lab := dept.LabByName("Systems")
	require.NotNil(t, lab)
	assert.Equal(t, "Systems", lab.LabName)

	assert.Nil(t, dept.LabByName("Robotics"))
}

func TestSectionByName(t *testing.T) {
	dept := sampleDepartment()
	lab := dept.LabByName("Networking")
	require.NotNil(t, lab)

	sec := lab.SectionByName("B")
	require.NotNil(t, sec)
	assert.Equal(t, "B", sec.SectionName)

	assert.Nil(t, lab.SectionByName("C"))
}

func TestRemoveLabPreservesSiblingOrder(t *testing.T) {
	dept := sampleDepartment()
	dept.Labs = append(dept.Labs, Lab{ID: bson.NewObjectID(), LabName: "Robotics"})
	removedID := dept.Labs[1].ID

	require.True(t, dept.RemoveLab(removedID))

	require.Len(t, dept.Labs, 2)
	assert.Equal(t, "Networking", dept.Labs[0].LabName)
	assert.Equal(t, "Robotics", dept.Labs[1].LabName)

	// a second removal with the same id finds nothing
	assert.False(t, dept.RemoveLab(removedID))
}

func TestRemoveSection(t *testing.T) {
	dept := sampleDepartment()
	lab := dept.LabByName("Networking")
	secID := lab.Sections[0].ID

	require.True(t, lab.RemoveSection(secID))
	require.Len(t, lab.Sections, 1)
	assert.Equal(t, "B", lab.Sections[0].SectionName)

	assert.False(t, lab.RemoveSection(secID))
}

func TestRemoveEntry(t *testing.T) {
	sec := Section{
		ID:          bson.NewObjectID(),
		SectionName: "A",
		DSREntries: []DSREntry{
			{ID: bson.NewObjectID(), ComponentName: "Switch"},
			{ID: bson.NewObjectID(), ComponentName: "Router"},
		},
	}
	target := sec.DSREntries[0].ID

	require.True(t, sec.RemoveEntry(target))
	require.Len(t, sec.DSREntries, 1)
	assert.Equal(t, "Router", sec.DSREntries[0].ComponentName)

	assert.False(t, sec.RemoveEntry(target))
	assert.Equal(t, -1, sec.EntryIndex(target))
}

func TestAssignIDs(t *testing.T) {
	dept := Department{
		DeptName: "CS",
		Labs: []Lab{
			{
				LabName: "Networking",
				Sections: []Section{
					{
						SectionName: "A",
						DSREntries:  []DSREntry{{ComponentName: "Switch"}},
					},
				},
			},
		},
	}

	dept.AssignIDs()

	assert.False(t, dept.ID.IsZero())
	assert.False(t, dept.Labs[0].ID.IsZero())
	assert.False(t, dept.Labs[0].Sections[0].ID.IsZero())
	assert.False(t, dept.Labs[0].Sections[0].DSREntries[0].ID.IsZero())
}

func TestAssignIDsKeepsExisting(t *testing.T) {
	dept := sampleDepartment()
	id := dept.Labs[0].ID

	dept.AssignIDs()

	assert.Equal(t, id, dept.Labs[0].ID)
}
