// Package vmbeta implements Variant B: an 8-register unsigned VM whose
// program is built from the key's length, and whose sole error-propagation
// mechanism is AssertEq redirecting the program counter to a sentinel on
// mismatch — modeled here as a plain field write, not a Go panic, because
// the spec treats it as ordinary control flow (§7), not an error.
package vmbeta

import (
	"github.com/alecthomas/repr"

	"crackme/internal/monitor"
	"crackme/internal/telemetry"
	gvm "crackme/internal/vm"
)

const (
	RegisterCount = 8
	// SentinelPC is the out-of-range program counter AssertEq jumps to on
	// failure; reaching it ends the program via the failure epilogue.
	SentinelPC = 999
)

type Instruction interface {
	isInstruction()
}

type LoadByte struct {
	Reg int
	Idx int
}

type Add struct{ R1, R2 int }
type Xor struct{ R1, R2 int }

type RotateLeft struct {
	R1    int
	Shift uint
}

type AssertEq struct {
	R1       int
	Value    uint64
	FailJump int
}

func (LoadByte) isInstruction()   {}
func (Add) isInstruction()        {}
func (Xor) isInstruction()        {}
func (RotateLeft) isInstruction() {}
func (AssertEq) isInstruction()   {}

// VM is Variant B's interpreter.
type VM struct {
	regs    [RegisterCount]uint64
	input   []byte
	program []Instruction
	pc      int
	done    bool
	mon     *monitor.Monitor
}

// New builds the check program for key. A key whose length isn't exactly 4
// gets an unconditionally-failing AssertEq prepended, which redirects PC to
// SentinelPC on the very first step — mirroring Beta.cpp's constructor
// exactly, including the checkpoints on intermediate XOR states.
func New(key string, mon *monitor.Monitor) *VM {
	v := &VM{
		input: []byte(key),
		mon:   mon,
	}

	var program []Instruction
	if len(v.input) != 4 {
		program = append(program, AssertEq{R1: 0, Value: 0xDEADBEEF, FailJump: SentinelPC})
	}

	program = append(program,
		LoadByte{Reg: 0, Idx: 0},
		Add{R1: 0, R2: 0},
		AssertEq{R1: 0, Value: 0x84, FailJump: SentinelPC},

		LoadByte{Reg: 1, Idx: 1},
		Xor{R1: 1, R2: 0},
		AssertEq{R1: 1, Value: 0xC1, FailJump: SentinelPC},

		LoadByte{Reg: 2, Idx: 2},
		Add{R1: 2, R2: 1},
		RotateLeft{R1: 2, Shift: 4},
		AssertEq{R1: 2, Value: 0x1150, FailJump: SentinelPC},

		LoadByte{Reg: 3, Idx: 3},
		Xor{R1: 3, R2: 2},
		Xor{R1: 3, R2: 0},
		AssertEq{R1: 3, Value: 0x1194, FailJump: SentinelPC},

		Xor{R1: 0, R2: 3},
		AssertEq{R1: 0, Value: 0x1110, FailJump: SentinelPC},
		Xor{R1: 0, R2: 3},
	)
	v.program = program
	return v
}

func (v *VM) byteAt(i int) uint64 {
	if i < 0 || i >= len(v.input) {
		return 0
	}
	return uint64(v.input[i])
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

// Step executes one instruction. If PC has reached the sentinel it instead
// performs the failure epilogue exactly once and reports Done; if PC has
// run off the end of the program it just reports Done.
func (v *VM) Step() gvm.StepResult {
	if v.done {
		return gvm.StepResult{Done: true}
	}
	if v.pc >= SentinelPC {
		v.regs[0] = 0xDEAD
		v.done = true
		return gvm.StepResult{Done: true}
	}
	if v.pc >= len(v.program) {
		v.done = true
		return gvm.StepResult{Done: true}
	}

	v.mon.Heartbeat()
	noise := v.mon.Poison()

	inst := v.program[v.pc]
	telemetry.Step("beta", v.pc, repr.String(inst), noise)

	switch op := inst.(type) {
	case LoadByte:
		v.regs[regIdx(op.Reg)] = v.byteAt(op.Idx) ^ noise
	case Add:
		r1, r2 := regIdx(op.R1), regIdx(op.R2)
		v.regs[r1] += v.regs[r2]
	case Xor:
		r1, r2 := regIdx(op.R1), regIdx(op.R2)
		v.regs[r1] ^= v.regs[r2]
	case RotateLeft:
		r1 := regIdx(op.R1)
		v.regs[r1] = rotl64(v.regs[r1], op.Shift)
	case AssertEq:
		r1 := regIdx(op.R1)
		if v.regs[r1] != op.Value {
			v.pc = op.FailJump
			return gvm.StepResult{Done: false}
		}
	default:
		panic("vmbeta: non-exhaustive instruction dispatch")
	}

	v.pc++
	return gvm.StepResult{Done: false}
}

// Output produces the epilogue plaintext/garble described in spec.md §4.3:
// secret XORed byte-by-byte with (reg[0]&0xFF) XOR 0x84.
func (v *VM) Output(secret []byte) []byte {
	mask := byte(v.regs[0]&0xFF) ^ 0x84
	out := make([]byte, len(secret))
	for i, c := range secret {
		out[i] = c ^ mask
	}
	return out
}

func (v *VM) Register(i int) uint64 { return v.regs[regIdx(i)] }
