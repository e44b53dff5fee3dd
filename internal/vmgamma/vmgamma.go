// Package vmgamma implements Variant C: a 16-register unsigned VM whose
// opcodes and operand indices are not stored in the instruction stream at
// all — they are drawn live from the chaos engine at dispatch time. The
// online VM and the offline keygen (cmd/gammakeygen) must draw from the
// chaos stream in lockstep; the Draw* helpers below are the functions both
// sides call (the VM through DecodeStep) so that alignment (P2) is a
// property of the code, not of careful manual mirroring.
package vmgamma

import (
	"github.com/alecthomas/repr"

	"crackme/internal/chaos"
	"crackme/internal/monitor"
	"crackme/internal/telemetry"
	gvm "crackme/internal/vm"
)

const (
	RegisterCount = 16
	StepBudget    = 256
)

// MathOp is the sub-opcode for InstMath, drawn from the chaos stream only
// when the decoded instruction turns out to be Math.
type MathOp uint8

const (
	MathAdd MathOp = iota
	MathSub
	MathXor
	MathMul
)

// Opcode is Gamma's four-way instruction kind, decoded from a single byte
// mod 4.
type Opcode uint8

const (
	OpMath Opcode = iota
	OpMov
	OpJmp
	OpSys
)

// DecodedStep is everything dispatch needs for one step, plus a record of
// exactly which chaos draws produced it — used by tests to assert P2.
type DecodedStep struct {
	Op    Opcode
	Sub   MathOp // only meaningful when Op == OpMath
	Idx1  int
	Idx2  int
	Draws int // number of chaos.NextByte() calls this decode consumed
}

// DrawOpcodeMask performs the one chaos draw every step starts with,
// regardless of what it decodes to.
func DrawOpcodeMask(c *chaos.Engine) byte {
	return c.NextByte()
}

// DrawMathSubOp performs the chaos draw that only happens when a step
// decodes to OpMath.
func DrawMathSubOp(c *chaos.Engine) MathOp {
	return MathOp(c.NextByte() % 4)
}

// DrawOperandIndices performs the two operand-index draws every step ends
// with, in order.
func DrawOperandIndices(c *chaos.Engine) (idx1, idx2 int) {
	return int(c.NextByte() % RegisterCount), int(c.NextByte() % RegisterCount)
}

// DecodeStep is the single alignment-critical function: given the raw code
// byte for this step and the current poison value, it performs the
// opcode-mask draw, then (only for Math) the sub-op draw, then the two
// operand draws — in that order, mirroring Gamma.cpp's run() body exactly.
// cmd/gammakeygen calls the same Draw* helpers in the same order while it
// forges code bytes (it never calls DrawMathSubOp, since every forged byte
// decodes to OpMov), so the draw count and interleaving can never drift
// apart between the two programs (P2).
func DecodeStep(c *chaos.Engine, codeByte byte, poison uint8) DecodedStep {
	mask := DrawOpcodeMask(c)
	draws := 1

	op := Opcode((codeByte ^ mask ^ poison) % 4)

	var sub MathOp
	if op == OpMath {
		sub = DrawMathSubOp(c)
		draws++
	}

	idx1, idx2 := DrawOperandIndices(c)
	draws += 2

	return DecodedStep{Op: op, Sub: sub, Idx1: idx1, Idx2: idx2, Draws: draws}
}

// SeedRegisters fills regs by drawing one chaos byte per register, the same
// seeding both GammaVM's constructor and the keygen's simulation perform
// before the 256-step loop begins.
func SeedRegisters(c *chaos.Engine, regs *[RegisterCount]uint64) {
	for i := range regs {
		regs[i] = uint64(c.NextByte())
	}
}

// VM is Variant C's interpreter.
type VM struct {
	regs      [RegisterCount]uint64
	code      []byte
	cipher    []byte
	chaosEng  *chaos.Engine
	pc        int
	steps     int
	mon       *monitor.Monitor
	drawTotal int // chaos draws made by step decoding so far, for P2 cross-checks
}

// New builds a VM for key against a pre-generated (code, cipher) pair —
// produced offline by cmd/gammakeygen for some intended valid key.
func New(key string, code, cipher []byte, mon *monitor.Monitor) *VM {
	v := &VM{
		code:     code,
		cipher:   cipher,
		chaosEng: chaos.New(key),
		mon:      mon,
	}
	SeedRegisters(v.chaosEng, &v.regs)
	return v
}

func regIdx(i int) int {
	return ((i % RegisterCount) + RegisterCount) % RegisterCount
}

func rotl64(x uint64, k uint) uint64 {
	k &= 63
	if k == 0 {
		return x
	}
	return (x << k) | (x >> (64 - k))
}

// Step executes exactly one of the 256 steps. Termination is governed by
// the step counter, not PC (spec.md §4.3): control flow may jump anywhere,
// but the program always runs exactly StepBudget steps.
func (v *VM) Step() gvm.StepResult {
	if v.steps >= StepBudget {
		return gvm.StepResult{Done: true}
	}

	v.mon.Heartbeat()
	poison := uint8(v.mon.Poison())

	raw := v.code[((v.pc%len(v.code))+len(v.code))%len(v.code)]
	decoded := DecodeStep(v.chaosEng, raw, poison)
	v.drawTotal += decoded.Draws

	telemetry.Step("gamma", v.pc, repr.String(decoded), uint64(poison))

	switch decoded.Op {
	case OpMath:
		i1, i2 := regIdx(decoded.Idx1), regIdx(decoded.Idx2)
		switch decoded.Sub {
		case MathAdd:
			v.regs[i1] += v.regs[i2]
		case MathSub:
			v.regs[i1] -= v.regs[i2]
		case MathXor:
			v.regs[i1] ^= v.regs[i2]
		case MathMul:
			v.regs[i1] *= v.regs[i2] | 1
		}
	case OpMov:
		i1, i2 := regIdx(decoded.Idx1), regIdx(decoded.Idx2)
		v.regs[i1] = v.regs[i2]
	case OpJmp:
		i1 := regIdx(decoded.Idx1)
		v.pc += int(v.regs[i1] & 0x1F)
	case OpSys:
		v.regs[0] = rotl64(v.regs[0], 3)
	default:
		panic("vmgamma: non-exhaustive instruction dispatch")
	}

	v.pc++
	v.steps++
	return gvm.StepResult{Done: false}
}

// Output decrypts the configured cipher against the terminal register file,
// cycling the register index modulo RegisterCount.
func (v *VM) Output() []byte {
	out := make([]byte, len(v.cipher))
	for i, c := range v.cipher {
		out[i] = c ^ byte(v.regs[i%RegisterCount]&0xFF)
	}
	return out
}

func (v *VM) Register(i int) uint64 { return v.regs[regIdx(i)] }

// DrawCount returns the number of chaos draws this run's steps have
// consumed, used by P2's alignment test. The RegisterCount draws made by
// SeedRegisters in New are not included.
func (v *VM) DrawCount() int { return v.drawTotal }
