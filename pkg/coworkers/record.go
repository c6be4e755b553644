package coworkers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// AllDepartments is the department criterion that matches every department.
const AllDepartments = ""

// ID is a server-assigned record identifier. The API may encode it as a JSON
// string or number; it is kept as text either way.
type ID string

// UnmarshalJSON accepts strings, numbers and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("coworkers: id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Record is a coworker as returned by the API.
type Record struct {
	ID         ID      `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

// Criteria narrows a record listing. Empty SearchText and AllDepartments
// leave the listing unconstrained.
type Criteria struct {
	SearchText string
	Department string
}

// Field names a Draft input.
type Field string

const (
	FieldName       Field = "name"
	FieldRole       Field = "role"
	FieldDepartment Field = "department"
	FieldSalary     Field = "salary"
)

// Draft holds not-yet-submitted form input. Salary stays text until submission.
type Draft struct {
	Name       string
	Role       string
	Department string
	Salary     string
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

// Valid reports whether the draft can be submitted: name, role and
// department are non-empty and salary parses to a finite number.
func (d Draft) Valid() bool {
	if d.Name == "" || d.Role == "" || d.Department == "" {
		return false
	}
	_, ok := parseSalary(d.Salary)
	return ok
}

// CreateRequest converts a valid draft into the API payload.
func (d Draft) CreateRequest() (CreateRequest, error) {
	if !d.Valid() {
		return CreateRequest{}, ErrInvalidDraft
	}
	salary, _ := parseSalary(d.Salary)
	return CreateRequest{
		Name:       d.Name,
		Role:       d.Role,
		Department: d.Department,
		Salary:     salary,
	}, nil
}

// CreateRequest is the body of POST /coworkers.
type CreateRequest struct {
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	Department string  `json:"department"`
	Salary     float64 `json:"salary"`
}

func parseSalary(text string) (float64, bool) {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
