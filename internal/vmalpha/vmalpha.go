// Package vmalpha implements Variant A of the crackme core: an 8-register
// signed VM executing a fixed, built-in instruction sequence. It is the
// simplest of the three and the most direct Go rendering of Alpha.cpp's
// std::variant dispatch — here a closed interface type switched on by
// instruction kind.
package vmalpha

import (
	"github.com/alecthomas/repr"

	"crackme/internal/monitor"
	"crackme/internal/telemetry"
	gvm "crackme/internal/vm"
)

// RegisterCount is Variant A's fixed register file size.
const RegisterCount = 8

// Instruction is the tagged sum type for Variant A. Every concrete
// instruction type below implements it; the switch in VM.Step must remain
// exhaustive (I2). The unexported isInstruction method seals the set to this
// package, but Go does not check a type switch for exhaustiveness: a new
// case added here without a matching dispatch arm compiles and reaches the
// switch's default arm, which panics.
type Instruction interface {
	isInstruction()
}

type LoadImm struct {
	Reg   int
	Value int64
}

type LoadInput struct {
	Reg int
	Idx int
}

type Add struct{ Dst, Src int }
type Xor struct{ Dst, Src int }
type Mul struct{ Dst, Src int }

type Check struct {
	Reg      int
	Expected int64
}

type Trap struct{}

func (LoadImm) isInstruction()   {}
func (LoadInput) isInstruction() {}
func (Add) isInstruction()       {}
func (Xor) isInstruction()       {}
func (Mul) isInstruction()       {}
func (Check) isInstruction()     {}
func (Trap) isInstruction()      {}

// VM is Variant A's interpreter. One VM is built per run from the user's
// key; it implements gvm.Steppable so the shared cooperative driver (C4)
// can advance it.
type VM struct {
	regs     [RegisterCount]int64
	zeroFlag bool
	tripped  bool
	input    []byte
	program  []Instruction
	pc       int
	mon      *monitor.Monitor
}

// New builds a VM with the reference 6-instruction check program: it
// verifies that (Input[0] * 2) XOR 123 equals ('A' * 2) XOR 123, i.e. that
// the first character of the key is 'A'.
func New(key string, mon *monitor.Monitor) *VM {
	v := &VM{
		input: []byte(key),
		mon:   mon,
	}
	v.program = []Instruction{
		LoadInput{Reg: 0, Idx: 0},
		LoadImm{Reg: 1, Value: 2},
		Mul{Dst: 0, Src: 1},
		LoadImm{Reg: 2, Value: 123},
		Xor{Dst: 0, Src: 2},
		Check{Reg: 0, Expected: 249},
	}
	return v
}

// byteAt returns input[i] zero-extended, or 0 if i is out of range (P5).
func (v *VM) byteAt(i int) int64 {
	if i < 0 || i >= len(v.input) {
		return 0
	}
	return int64(v.input[i])
}

// regIdx masks a register index into range (I1); none of Alpha's reference
// programs ever produce an out-of-range index, but the mask keeps the
// invariant true unconditionally rather than by construction alone.
func regIdx(i int) int {
	return ((i % RegisterCount) + RegisterCount) % RegisterCount
}

// Step executes exactly one instruction and reports whether the program has
// finished. See gvm.Steppable for the "N+1 calls for N instructions"
// convention this follows.
func (v *VM) Step() gvm.StepResult {
	if v.pc >= len(v.program) {
		return gvm.StepResult{Done: true}
	}

	v.mon.Heartbeat()
	noise := int64(v.mon.Poison())
	if noise != 0 {
		v.tripped = true
	}

	mutation := int64(0)
	if v.tripped {
		mutation = noise
	}

	inst := v.program[v.pc]
	telemetry.Step("alpha", v.pc, repr.String(inst), uint64(noise))

	switch op := inst.(type) {
	case LoadImm:
		v.regs[regIdx(op.Reg)] = op.Value + mutation
	case LoadInput:
		v.regs[regIdx(op.Reg)] = v.byteAt(op.Idx)
	case Add:
		d, s := regIdx(op.Dst), regIdx(op.Src)
		v.regs[d] = v.regs[d] + v.regs[s] + mutation
	case Xor:
		d, s := regIdx(op.Dst), regIdx(op.Src)
		v.regs[d] ^= v.regs[s]
	case Mul:
		d, s := regIdx(op.Dst), regIdx(op.Src)
		v.regs[d] *= v.regs[s]
	case Check:
		v.zeroFlag = v.regs[regIdx(op.Reg)] == op.Expected
	case Trap:
		v.tripped = true
	default:
		// I2: dispatch is total. Reaching here means a new Instruction
		// variant was added without a matching case.
		panic("vmalpha: non-exhaustive instruction dispatch")
	}

	v.pc++
	return gvm.StepResult{Done: false}
}

// Success reports whether the check passed and the run never tripped.
func (v *VM) Success() bool {
	return v.zeroFlag && !v.tripped
}

func (v *VM) Register(i int) int64 { return v.regs[regIdx(i)] }
func (v *VM) Tripped() bool        { return v.tripped }
