package coworkers

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service is the subset of the coworker API the orchestrator consumes.
// *Client implements it.
type Service interface {
	ListCoworkers(ctx context.Context, criteria Criteria) ([]Record, error)
	ListDepartments(ctx context.Context) ([]string, error)
	CreateCoworker(ctx context.Context, req CreateRequest) (*Record, error)
}

// Operator-facing status texts.
const (
	msgFetchCoworkersFailed   = "Error fetching coworkers: "
	msgFetchDepartmentsFailed = "Error fetching departments: "
	msgCreateFailed           = "Error creating coworker: "
	msgCreated                = "Coworker added successfully!"
)

// Orchestrator issues API calls and applies their outcomes to the local
// state. It is the only writer of the record store, the department catalog
// and the status slot.
type Orchestrator struct {
	svc    Service
	logger *zap.Logger

	records     RecordStore
	departments DepartmentCatalog
	filter      FilterState
	draft       DraftRecord
	status      StatusSlot
}

// NewOrchestrator builds an orchestrator with empty state.
func NewOrchestrator(svc Service, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{svc: svc, logger: logger}
}

// LoadInitial fetches the department catalog and a record snapshot for the
// current criteria concurrently. Each failure sets the status; nothing is
// retried. The first error encountered is returned.
func (o *Orchestrator) LoadInitial(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return o.refreshDepartments(ctx) })
	g.Go(func() error { return o.RefreshRecords(ctx) })
	return g.Wait()
}

// RefreshRecords re-fetches records using the current criteria. On success
// the snapshot is replaced and the status is left alone; on failure the
// previous snapshot is kept and the status reports the error.
func (o *Orchestrator) RefreshRecords(ctx context.Context) error {
	criteria := o.filter.Snapshot()
	records, err := o.svc.ListCoworkers(ctx, criteria)
	if err != nil {
		se := asSyncError(FetchFailed, opListCoworkers, err)
		o.status.SetError(msgFetchCoworkersFailed + se.Error())
		o.logger.Warn("refresh records failed",
			zap.String("search", criteria.SearchText),
			zap.String("department", criteria.Department),
			zap.Error(se))
		return se
	}
	o.records.Replace(records)
	o.logger.Debug("records replaced", zap.Int("count", len(records)))
	return nil
}

// SubmitDraft sends the current draft as a new record. The status is cleared
// first. On success the draft is cleared, a success status is set and the
// records are refreshed once the create response has been observed. On
// failure the draft is kept so the operator can retry.
func (o *Orchestrator) SubmitDraft(ctx context.Context) error {
	o.status.Clear()

	draft := o.draft.Snapshot()
	req, err := draft.CreateRequest()
	if err != nil {
		o.status.SetError(msgCreateFailed + err.Error())
		return err
	}

	if _, err := o.svc.CreateCoworker(ctx, req); err != nil {
		se := asSyncError(CreateFailed, opCreateCoworker, err)
		o.status.SetError(msgCreateFailed + se.Error())
		o.logger.Warn("create coworker failed", zap.String("name", req.Name), zap.Error(se))
		return se
	}

	o.draft.Clear()
	o.status.SetSuccess(msgCreated)
	o.logger.Info("coworker created", zap.String("name", req.Name), zap.String("department", req.Department))
	return o.RefreshRecords(ctx)
}

func (o *Orchestrator) refreshDepartments(ctx context.Context) error {
	names, err := o.svc.ListDepartments(ctx)
	if err != nil {
		se := asSyncError(FetchFailed, opListDepartments, err)
		o.status.SetError(msgFetchDepartmentsFailed + se.Error())
		o.logger.Warn("load departments failed", zap.Error(se))
		return se
	}
	o.departments.Replace(names)
	return nil
}

// SetSearchText records search input. No fetch is triggered.
func (o *Orchestrator) SetSearchText(text string) { o.filter.SetSearchText(text) }

// SetDepartment records the department selection. No fetch is triggered.
func (o *Orchestrator) SetDepartment(name string) { o.filter.SetDepartment(name) }

// SetDraftField records create-form input.
func (o *Orchestrator) SetDraftField(field Field, value string) error {
	return o.draft.SetField(field, value)
}

func (o *Orchestrator) Records() []Record     { return o.records.Current() }
func (o *Orchestrator) Departments() []string { return o.departments.Current() }
func (o *Orchestrator) Criteria() Criteria    { return o.filter.Snapshot() }
func (o *Orchestrator) Draft() Draft          { return o.draft.Snapshot() }
func (o *Orchestrator) DraftValid() bool      { return o.draft.IsValid() }
func (o *Orchestrator) Status() Status        { return o.status.Current() }

// View is a point-in-time copy of everything a renderer needs.
type View struct {
	Records     []Record
	Departments []string
	Criteria    Criteria
	Draft       Draft
	DraftValid  bool
	Status      Status
}

// View snapshots every container. Each field is internally consistent; the
// fields are read one after another, not under a shared lock.
func (o *Orchestrator) View() View {
	draft := o.draft.Snapshot()
	return View{
		Records:     o.records.Current(),
		Departments: o.departments.Current(),
		Criteria:    o.filter.Snapshot(),
		Draft:       draft,
		DraftValid:  draft.Valid(),
		Status:      o.status.Current(),
	}
}
