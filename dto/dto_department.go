package dto

// ===== Request =====
type AddLabRequest struct {
	LabName string `json:"labName"`
}

type AddSectionRequest struct {
	SectionName string `json:"sectionName"`
}
