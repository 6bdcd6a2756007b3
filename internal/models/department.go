package models

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Department is the aggregate root: every lab, section and DSR entry lives
// inside one department document and is read and written as a whole.
type Department struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	DeptName string        `bson:"deptName" json:"deptName"`
	Labs     []Lab         `bson:"labs" json:"labs"`
}

type Lab struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	LabName  string        `bson:"labName" json:"labName"`
	Sections []Section     `bson:"sections" json:"sections"`
}

type Section struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	SectionName string        `bson:"sectionName" json:"sectionName"`
	DSREntries  []DSREntry    `bson:"dsrEntries" json:"dsrEntries"`
}

type DSREntry struct {
	ID                  bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ComponentName       string        `bson:"componentName" json:"componentName"`
	Config              string        `bson:"config" json:"config"`
	Model               string        `bson:"model" json:"model"`
	Pod                 string        `bson:"pod" json:"pod"`
	Vendor              string        `bson:"vendor" json:"vendor"`
	PurchaseOrderNum    int64         `bson:"purchaseOrderNum" json:"purchaseOrderNum"`
	TotalPrice          float64       `bson:"totalPrice" json:"totalPrice"`
	PerUnitPrice        float64       `bson:"perUnitPrice" json:"perUnitPrice"`
	BalanceAmt          float64       `bson:"balanceAmt" json:"balanceAmt"`
	Quantity            int           `bson:"quantity" json:"quantity"`
	Status              string        `bson:"status" json:"status"`
	LocationOfComponent string        `bson:"locationOfComponent" json:"locationOfComponent"`
	ValidatedBy         string        `bson:"validatedBy" json:"validatedBy"`
	Comments            string        `bson:"comments,omitempty" json:"comments,omitempty"`
}

// LabByName finds a lab inside the department by its human-readable name.
// Entry-level operations address their section this way, mirroring the
// dropdown selectors in the client.
func (d *Department) LabByName(name string) *Lab {
	for i := range d.Labs {
		if d.Labs[i].LabName == name {
			return &d.Labs[i]
		}
	}
	return nil
}

func (l *Lab) SectionByName(name string) *Section {
	for i := range l.Sections {
		if l.Sections[i].SectionName == name {
			return &l.Sections[i]
		}
	}
	return nil
}

// RemoveLab deletes the lab with the given id from the ordered list,
// preserving sibling order. Returns false when the id is absent.
func (d *Department) RemoveLab(labID bson.ObjectID) bool {
	for i := range d.Labs {
		if d.Labs[i].ID == labID {
			d.Labs = append(d.Labs[:i], d.Labs[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Department) LabByID(labID bson.ObjectID) *Lab {
	for i := range d.Labs {
		if d.Labs[i].ID == labID {
			return &d.Labs[i]
		}
	}
	return nil
}

func (l *Lab) RemoveSection(sectionID bson.ObjectID) bool {
	for i := range l.Sections {
		if l.Sections[i].ID == sectionID {
			l.Sections = append(l.Sections[:i], l.Sections[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Section) EntryIndex(entryID bson.ObjectID) int {
	for i := range s.DSREntries {
		if s.DSREntries[i].ID == entryID {
			return i
		}
	}
	return -1
}

func (s *Section) RemoveEntry(entryID bson.ObjectID) bool {
	i := s.EntryIndex(entryID)
	if i < 0 {
		return false
	}
	s.DSREntries = append(s.DSREntries[:i], s.DSREntries[i+1:]...)
	return true
}

// AssignIDs gives every nested node without an id a fresh ObjectID, the way
// the document mapper in the old backend minted subdocument ids on save.
// Payloads that populate name selectors on the client carry these ids back.
func (d *Department) AssignIDs() {
	if d.ID.IsZero() {
		d.ID = bson.NewObjectID()
	}
	for i := range d.Labs {
		lab := &d.Labs[i]
		if lab.ID.IsZero() {
			lab.ID = bson.NewObjectID()
		}
		for j := range lab.Sections {
			sec := &lab.Sections[j]
			if sec.ID.IsZero() {
				sec.ID = bson.NewObjectID()
			}
			for k := range sec.DSREntries {
				if sec.DSREntries[k].ID.IsZero() {
					sec.DSREntries[k].ID = bson.NewObjectID()
				}
			}
		}
	}
}
