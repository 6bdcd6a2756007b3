package dto

// ===== Request =====

// UserLab mirrors the AddEditUsers form: a lab name plus the section names
// picked for it.
type UserLab struct {
	LabName  string   `json:"labName"`
	Sections []string `json:"sections"`
}

// AddUserRequest / edit-user body. Department and labs describe the scope
// snapshot to copy onto the user; for Admins they may be empty.
type AddUserRequest struct {
	FullName   string    `json:"fullName"`
	Email      string    `json:"email"`
	Password   string    `json:"password"`
	Role       string    `json:"role"`
	Department string    `json:"department"`
	Labs       []UserLab `json:"labs"`
}
