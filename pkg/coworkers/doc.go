// Package coworkers keeps a local view of coworker records consistent with
// the coworker API across asynchronous round trips.
//
// An Orchestrator owns five state containers: the record snapshot, the
// department catalog, the filter criteria, the create-form draft and a single
// status slot. Operator input mutates the criteria and draft only; network
// results are applied by the orchestrator as whole-value replacements so a
// reader never observes a partially applied fetch.
//
// Overlapping RefreshRecords calls are not sequenced: whichever response
// arrives last replaces the snapshot.
package coworkers
