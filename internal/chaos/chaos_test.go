package chaos_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"crackme/internal/chaos"
)

// P1: for any seed and count, two independently seeded engines agree.
func TestDeterminism(t *testing.T) {
	seeds := []string{"", "A", "BET@", "a very long authorization key indeed"}
	for _, seed := range seeds {
		seed := seed
		t.Run(seed, func(t *testing.T) {
			a := chaos.New(seed)
			b := chaos.New(seed)
			for i := 0; i < 512; i++ {
				require.Equal(t, a.NextByte(), b.NextByte(), "byte %d diverged", i)
			}
		})
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := chaos.New("key-one")
	b := chaos.New("key-two")
	same := true
	for i := 0; i < 32; i++ {
		if a.NextByte() != b.NextByte() {
			same = false
			break
		}
	}
	require.False(t, same, "distinct seeds should not produce identical streams")
}
