// Package cosim is a co-simulation scheduling kernel: it drives an
// externally compiled digital-hardware model's inputs, observes its
// outputs, and runs user-defined reactive processes while reproducing
// the stratified event semantics of a hardware description language
// (commit-then-evaluate-then-react, with non-blocking update
// discipline) alongside a DUT that keeps its own internal event queue.
//
// The testbench-facing API is generic and type-safe; the scheduler
// itself (package internal/engine) is not, so that one process can be
// sensitive to signals of different widths through a single Observable
// capability surface.
package cosim
