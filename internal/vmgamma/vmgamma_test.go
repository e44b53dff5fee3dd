package vmgamma_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"crackme/internal/chaos"
	"crackme/internal/monitor"
	gvm "crackme/internal/vm"
	"crackme/internal/vmgamma"
)

func noopMonitor() *monitor.Monitor {
	return monitor.New(time.Hour, time.Hour, 0xFF)
}

// generate reproduces cmd/gammakeygen's algorithm inline, for tests that
// want a matched (code, cipher) pair without importing a main package.
func generate(t *testing.T, key string, plaintext []byte) (code, cipher []byte) {
	t.Helper()
	c := chaos.New(key)

	var regs [vmgamma.RegisterCount]uint64
	vmgamma.SeedRegisters(c, &regs)

	code = make([]byte, vmgamma.StepBudget)
	const targetOp = byte(vmgamma.OpMov)
	for i := 0; i < vmgamma.StepBudget; i++ {
		mask := vmgamma.DrawOpcodeMask(c)
		code[i] = targetOp ^ mask

		idx1, idx2 := vmgamma.DrawOperandIndices(c)
		regs[idx1] = regs[idx2]
	}

	cipher = make([]byte, len(plaintext))
	for i, p := range plaintext {
		cipher[i] = p ^ byte(regs[i%vmgamma.RegisterCount]&0xFF)
	}
	return code, cipher
}

// Scenario 5: Gamma, matched key.
func TestMatchedKeyDecodesPlaintext(t *testing.T) {
	plaintext := []byte("Congratulations! The Gamma core is dissolved.")
	key := "dissolve-me"
	code, cipher := generate(t, key, plaintext)

	v := vmgamma.New(key, code, cipher, noopMonitor())
	gvm.Drive(context.Background(), v, time.Microsecond)

	require.Equal(t, plaintext, v.Output())
}

// Scenario 6: Gamma, mismatched key.
func TestMismatchedKeyGarbles(t *testing.T) {
	plaintext := []byte("Congratulations! The Gamma core is dissolved.")
	code, cipher := generate(t, "dissolve-me", plaintext)

	v := vmgamma.New("wrong-key-entirely", code, cipher, noopMonitor())
	gvm.Drive(context.Background(), v, time.Microsecond)

	require.NotEqual(t, plaintext, v.Output())
}

func TestRunsExactly256Steps(t *testing.T) {
	plaintext := []byte("x")
	code, cipher := generate(t, "k", plaintext)
	v := vmgamma.New("k", code, cipher, noopMonitor())
	resumptions := gvm.Drive(context.Background(), v, time.Microsecond)
	require.Equal(t, vmgamma.StepBudget+1, resumptions)
}

// P2: the VM's chaos draw count for a matched key/code pair equals the
// generator's draw count for the same pair (steps*3, since the generated
// code is always decoded as Mov and never draws a math sub-op).
func TestChaosDrawAlignment(t *testing.T) {
	plaintext := []byte("alignment")
	key := "alignment-key"
	code, cipher := generate(t, key, plaintext)

	v := vmgamma.New(key, code, cipher, noopMonitor())
	gvm.Drive(context.Background(), v, time.Microsecond)

	// Register seeding draws RegisterCount bytes, then each of the 256
	// steps draws exactly 3 (mask + 2 operands) because every decoded
	// opcode lands on Mov by construction.
	wantDraws := vmgamma.StepBudget * 3
	require.Equal(t, wantDraws, v.DrawCount())
}
