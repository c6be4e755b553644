package domain

import "time"

// Coworker is a staff record kept by the service.
type Coworker struct {
	ID         string
	Name       string
	Role       string
	Department string
	Salary     float64
	CreatedAt  time.Time
}
