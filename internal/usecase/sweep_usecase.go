package usecase

import "context"

// SweepResult summarizes one reminder sweep.
type SweepResult struct {
	EventsScanned     int `json:"events_scanned"`
	UsersMatched      int `json:"users_matched"`
	NotificationsSent int `json:"notifications_sent"`
	DuplicatesSkipped int `json:"duplicates_skipped"`
	PublishFailures   int `json:"publish_failures"`
}

// SweepUsecase drives the periodic reminder pass. A sweep scans every event
// starting inside the lookahead window, matches interested users, persists a
// notification record per new (user, event) pair and publishes a reminder for
// each record it actually inserted. Running the same sweep twice sends
// nothing new: the persistence layer's uniqueness makes the pass idempotent.
type SweepUsecase interface {
	// RunSweep executes one pass and reports what it did. Failures on
	// individual events or users are logged and skipped; only systemic
	// failures (the initial event scan) abort the sweep.
	RunSweep(ctx context.Context) (*SweepResult, error)
}
