// Package pipeline wires the extraction stages into a single run.
//
// Run takes a photograph path plus tuning options and produces the survey
// numbers and output graphics in one pass:
//
//	load -> crop -> grayscale -> blur -> threshold -> morphology ->
//	trace -> largest -> simplify -> smooth -> scale -> measure -> render
//
// Every stage lives in its own package; this package owns the order, the
// option defaults and validation, and the progress logging. Options are
// plain values so a run is reproducible from its flag set alone.
package pipeline
