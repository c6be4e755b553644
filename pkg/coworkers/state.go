package coworkers

import "sync"

// RecordStore holds the most recent record snapshot.
type RecordStore struct {
	mu      sync.RWMutex
	records []Record
}

// Replace swaps in a new snapshot. Prior contents are discarded, never merged.
func (s *RecordStore) Replace(records []Record) {
	next := append([]Record(nil), records...)
	s.mu.Lock()
	s.records = next
	s.mu.Unlock()
}

// Current returns a copy of the snapshot.
func (s *RecordStore) Current() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Record{}, s.records...)
}

// DepartmentCatalog holds the known department names.
type DepartmentCatalog struct {
	mu    sync.RWMutex
	names []string
}

// Replace swaps in a new name list.
func (c *DepartmentCatalog) Replace(names []string) {
	next := append([]string(nil), names...)
	c.mu.Lock()
	c.names = next
	c.mu.Unlock()
}

// Current returns a copy of the names.
func (c *DepartmentCatalog) Current() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string{}, c.names...)
}

// FilterState holds the search criteria. Any text is accepted.
type FilterState struct {
	mu       sync.RWMutex
	criteria Criteria
}

func (f *FilterState) SetSearchText(text string) {
	f.mu.Lock()
	f.criteria.SearchText = text
	f.mu.Unlock()
}

func (f *FilterState) SetDepartment(name string) {
	f.mu.Lock()
	f.criteria.Department = name
	f.mu.Unlock()
}

func (f *FilterState) Snapshot() Criteria {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.criteria
}

// DraftRecord holds the create-form input.
type DraftRecord struct {
	mu    sync.RWMutex
	draft Draft
}

// SetField updates one input by name.
func (d *DraftRecord) SetField(field Field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch field {
	case FieldName:
		d.draft.Name = value
	case FieldRole:
		d.draft.Role = value
	case FieldDepartment:
		d.draft.Department = value
	case FieldSalary:
		d.draft.Salary = value
	default:
		return ErrUnknownField
	}
	return nil
}

func (d *DraftRecord) IsValid() bool {
	return d.Snapshot().Valid()
}

func (d *DraftRecord) Clear() {
	d.mu.Lock()
	d.draft = Draft{}
	d.mu.Unlock()
}

func (d *DraftRecord) Snapshot() Draft {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.draft
}

// StatusKind tells an error message from a success message.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusError
	StatusSuccess
)

// Status is the single operator-facing message.
type Status struct {
	Kind    StatusKind
	Message string
}

// IsError reports whether the status carries an error.
func (s Status) IsError() bool { return s.Kind == StatusError }

// IsSuccess reports whether the status carries a success message.
func (s Status) IsSuccess() bool { return s.Kind == StatusSuccess }

// StatusSlot holds at most one Status; every write overwrites the last.
type StatusSlot struct {
	mu     sync.RWMutex
	status Status
}

func (s *StatusSlot) SetError(msg string)   { s.set(Status{Kind: StatusError, Message: msg}) }
func (s *StatusSlot) SetSuccess(msg string) { s.set(Status{Kind: StatusSuccess, Message: msg}) }
func (s *StatusSlot) Clear()                { s.set(Status{}) }

func (s *StatusSlot) Current() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *StatusSlot) set(st Status) {
	s.mu.Lock()
	s.status = st
	s.mu.Unlock()
}
