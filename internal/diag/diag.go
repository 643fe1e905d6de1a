// Package diag emits the kernel's structured log lines through log/slog.
// It has no dependency on the engine package so the kernel can call it
// without creating an import cycle.
package diag

import "log/slog"

// Delta logs one delta-cycle iteration, once its Phases 1-4 have run.
func Delta(l *slog.Logger, t uint64, iteration int) {
	l.Debug("delta cycle", "time", t, "iteration", iteration)
}

// TimeStep logs a converged time step, just before the waveform sink is
// notified.
func TimeStep(l *slog.Logger, t uint64) {
	l.Info("time step committed", "time", t)
}

// Timeout logs normal termination by timeout.
func Timeout(l *slog.Logger, t uint64) {
	l.Warn("simulation timeout reached", "time", t)
}

// Finished logs normal termination by DUT finish flag.
func Finished(l *slog.Logger, t uint64) {
	l.Info("dut raised finish flag", "time", t)
}

// Quiescent logs normal termination by exhaustion of both event queues.
func Quiescent(l *slog.Logger, t uint64) {
	l.Info("simulation quiescent", "time", t)
}

// Loop logs a combinational-loop failure.
func Loop(l *slog.Logger, t uint64, iterations int, dirty []string) {
	l.Error("combinational loop detected", "time", t, "iterations", iterations, "dirty", dirty)
}
