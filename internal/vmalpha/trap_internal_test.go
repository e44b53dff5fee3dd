package vmalpha

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crackme/internal/monitor"
)

// Trap never appears in the built-in program, so it's exercised directly
// against the dispatch switch here instead.
func TestTrapForcesTrippedWithoutTouchingRegisters(t *testing.T) {
	v := New("A", monitor.New(time.Hour, time.Hour, 0x1337))
	v.program = []Instruction{Trap{}}
	v.pc = 0
	before := v.regs

	v.Step()

	require.True(t, v.tripped)
	require.Equal(t, before, v.regs)
}
