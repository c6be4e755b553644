package domain

import "time"

// Department is a named unit coworkers belong to. Departments are created
// implicitly the first time a coworker references them.
type Department struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
