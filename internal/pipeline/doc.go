// Package pipeline runs one batchstat invocation as a fixed sequence of steps.
//
// Every run moves through a strict state machine:
//
//	Idle -> Reading -> Computing -> Reporting -> Terminated
//
// Each Step declares the state it runs in. The pipeline performs the
// transition before a step starts, so the states are visited in order and
// never revisited. A failing step moves the run straight to Terminated;
// later steps, and in particular the reporting step, never run. The results
// file is therefore only touched after reading and computing succeeded.
//
// The pipeline is strictly sequential. Context cancellation is checked
// between steps only.
package pipeline
