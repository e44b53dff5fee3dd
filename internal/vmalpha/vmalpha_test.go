package vmalpha_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crackme/internal/monitor"
	gvm "crackme/internal/vm"
	"crackme/internal/vmalpha"
)

func runToCompletion(t *testing.T, v *vmalpha.VM) int {
	t.Helper()
	return gvm.Drive(context.Background(), v, time.Microsecond)
}

// noopMonitor returns a Monitor that is never started: its atomics read as
// their zero values, which is exactly "never tripped" for tests that don't
// care about tamper detection.
func noopMonitor(t *testing.T) *monitor.Monitor {
	t.Helper()
	return monitor.New(time.Hour, time.Hour, 0x1337)
}

// Scenario 1: Alpha, correct key.
func TestCorrectKeyGrantsAccess(t *testing.T) {
	v := vmalpha.New("A", noopMonitor(t))
	resumptions := runToCompletion(t, v)

	require.Equal(t, int64(249), v.Register(0))
	require.True(t, v.Success())
	require.False(t, v.Tripped())
	require.Equal(t, 7, resumptions) // 6 instructions + 1 (P6)
}

// Scenario 2: Alpha, wrong key.
func TestWrongKeyDeniesAccess(t *testing.T) {
	v := vmalpha.New("B", noopMonitor(t))
	runToCompletion(t, v)

	want := (int64('B') * 2) ^ 123
	require.Equal(t, want, v.Register(0))
	require.NotEqual(t, int64(249), v.Register(0))
	require.False(t, v.Success())
}

// P5: OOB input never faults and reads back zero.
func TestOutOfBoundsInputIsZero(t *testing.T) {
	v := vmalpha.New("", noopMonitor(t))
	require.NotPanics(t, func() { runToCompletion(t, v) })
	// With an empty key, Input[0] reads 0, so R0 ends up (0*2)^123 = 123.
	require.Equal(t, int64(123), v.Register(0))
}

