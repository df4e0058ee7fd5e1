// Package logging provides the structured logging interface used by the
// bigcalc application layer. The numeric packages never log; everything
// above them (configuration, calibration, the evaluator and the HTTP
// server) logs through a Logger backed by zerolog.
package logging
