package dto

// CreateCoworkerRequest payload.
type CreateCoworkerRequest struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Salary     *float64 `json:"salary"`
}

// CoworkerResponse is the wire form of a coworker record.
type CoworkerResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

// DepartmentsResponse lists department names.
type DepartmentsResponse struct {
	Departments []string `json:"departments"`
}
