// Package vm holds the plumbing shared by all three crackme variants: a
// cooperative driver that repeatedly advances a Steppable one instruction
// at a time.
//
// Variant A/B/C each implement Steppable with their own instruction sum
// type, register file, and epilogue; Drive doesn't know or care which.
package vm

import (
	"context"
	"time"
)

// StepResult is what a Steppable reports after executing exactly one
// instruction.
type StepResult struct {
	// Done is true once the program has reached its terminal state
	// (fixed program exhausted, sentinel PC reached, or step budget spent,
	// depending on the variant).
	Done bool
}

// Steppable is a single-instruction-at-a-time virtual machine. Step must
// never block; yielding is modeled by Step simply returning, handing
// control back to Drive.
//
// By convention (to satisfy P6 exactly) a Step call that finds the program
// already at its terminal state reports Done without executing an
// instruction; every other call executes exactly one instruction and
// reports not-done, even if that instruction happened to be the last one in
// the program. So a program of N instructions takes N+1 Step calls: N that
// each execute one instruction, plus one final call that only observes
// termination.
type Steppable interface {
	Step() StepResult
}

// Drive repeatedly calls Step until it reports Done, sleeping resumeDelay
// between resumptions. The delay is deliberately far below any variant's
// tamper threshold: it exists only to give the monitor goroutine
// scheduling opportunities, never to approach the timing bound that would
// itself look like tampering.
//
// Drive returns the number of resumptions performed, i.e. the number of
// Step calls issued — this equals the number of instructions executed
// plus one.
func Drive(ctx context.Context, s Steppable, resumeDelay time.Duration) int {
	resumptions := 0
	for {
		resumptions++
		result := s.Step()
		if result.Done {
			return resumptions
		}
		select {
		case <-ctx.Done():
			return resumptions
		case <-time.After(resumeDelay):
		}
	}
}
