// Package apperrors defines the application-level error types of bigcalc
// and the exit codes they map to. Arithmetic failures coming from the
// numeric packages are carried unchanged as the cause of an
// EvaluationError, so callers can still match them with errors.Is against
// the numerr sentinels.
package apperrors
