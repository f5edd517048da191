package service

// Outcome labels recorded by AuthMetrics.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

// AuthMetrics records the outcome of account operations.
type AuthMetrics interface {
	Registration(outcome string)
	Login(outcome string)
	ProfileUpdate(outcome string)
	Moderation(flag string, outcome string)
}
