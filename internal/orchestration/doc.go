// Package orchestration evaluates one expression concurrently under several
// multiplication strategies and checks that the results agree. It is kept
// apart from presentation through the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
