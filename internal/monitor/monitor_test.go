package monitor_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crackme/internal/monitor"
)

func TestUntrippedUnderNormalHeartbeats(t *testing.T) {
	m := monitor.New(2*time.Millisecond, 50*time.Millisecond, 0xFF)
	m.Start()
	defer m.Stop()

	for i := 0; i < 20; i++ {
		m.Heartbeat()
		time.Sleep(time.Millisecond)
	}
	require.False(t, m.Tripped())
	require.Zero(t, m.Poison())
}

// P3: once poison is non-zero it never un-poisons within a run.
func TestTripsOnStaleHeartbeatAndStaysTripped(t *testing.T) {
	m := monitor.New(2*time.Millisecond, 10*time.Millisecond, 0xDEAD)
	m.Start()
	defer m.Stop()

	m.Heartbeat()
	require.Eventually(t, m.Tripped, 200*time.Millisecond, 2*time.Millisecond)
	require.Equal(t, uint64(0xDEAD), m.Poison())

	// Resuming heartbeats must not heal the poison.
	for i := 0; i < 10; i++ {
		m.Heartbeat()
		time.Sleep(time.Millisecond)
	}
	require.True(t, m.Tripped())
	require.Equal(t, uint64(0xDEAD), m.Poison())
}
