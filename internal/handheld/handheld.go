// Package handheld executes the boot code of a handheld game console: a flat
// list of acc, jmp and nop instructions over a single accumulator.
package handheld

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is an instruction opcode.
type Op uint8

const (
	// Acc adds the operand to the accumulator.
	Acc Op = iota
	// Jmp moves the program counter by the operand.
	Jmp
	// Nop does nothing.
	Nop
)

var opNames = map[string]Op{"acc": Acc, "jmp": Jmp, "nop": Nop}

func (o Op) String() string {
	switch o {
	case Acc:
		return "acc"
	case Jmp:
		return "jmp"
	case Nop:
		return "nop"
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Instruction is an opcode with its signed operand.
type Instruction struct {
	Op  Op
	Arg int
}

func (in Instruction) String() string {
	return fmt.Sprintf("%s %+d", in.Op, in.Arg)
}

// Program is an ordered instruction list.
type Program []Instruction

// Parse reads one "op +N" instruction per line.
func Parse(text string) (Program, error) {
	var prog Program
	for n, line := range strings.Split(strings.TrimSpace(text), "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"op arg\", got %q", n+1, line)
		}
		op, ok := opNames[fields[0]]
		if !ok {
			return nil, fmt.Errorf("line %d: unknown opcode %q", n+1, fields[0])
		}
		arg, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		prog = append(prog, Instruction{Op: op, Arg: arg})
	}
	return prog, nil
}

// Status says how a run ended.
type Status int

const (
	// Terminated means the program counter stepped exactly one past the last
	// instruction.
	Terminated Status = iota
	// Looped means an instruction was about to execute a second time.
	Looped
	// OutOfBounds means a jump left the program anywhere other than the
	// instruction just past the end.
	OutOfBounds
)

func (s Status) String() string {
	switch s {
	case Terminated:
		return "terminated"
	case Looped:
		return "looped"
	case OutOfBounds:
		return "out of bounds"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Result is the outcome of a run. Acc is the accumulator when execution
// stopped and PC the instruction it stopped at.
type Result struct {
	Status Status
	Acc    int
	PC     int
}

// Machine runs a program. The program is owned by the machine and may be
// patched in place with Flip.
type Machine struct {
	prog    Program
	pc      int
	acc     int
	visited []bool

	// OnExecute, if set, is called with each program counter just before
	// its instruction runs.
	OnExecute func(pc int)
}

// New returns a machine over a copy of prog.
func New(prog Program) *Machine {
	return &Machine{
		prog:    append(Program(nil), prog...),
		visited: make([]bool, len(prog)),
	}
}

// Program returns the machine's current instructions.
func (m *Machine) Program() Program { return m.prog }

// Reset clears the program counter, accumulator and visited marks.
func (m *Machine) Reset() {
	m.pc = 0
	m.acc = 0
	for i := range m.visited {
		m.visited[i] = false
	}
}

// Visited reports whether instruction i ran during the latest run.
func (m *Machine) Visited(i int) bool { return m.visited[i] }

// Run executes from a reset state until the program terminates, loops or
// jumps out of bounds.
func (m *Machine) Run() Result {
	m.Reset()
	for {
		switch {
		case m.pc == len(m.prog):
			return Result{Status: Terminated, Acc: m.acc, PC: m.pc}
		case m.pc < 0 || m.pc > len(m.prog):
			return Result{Status: OutOfBounds, Acc: m.acc, PC: m.pc}
		case m.visited[m.pc]:
			return Result{Status: Looped, Acc: m.acc, PC: m.pc}
		}
		m.visited[m.pc] = true
		if m.OnExecute != nil {
			m.OnExecute(m.pc)
		}
		in := m.prog[m.pc]
		switch in.Op {
		case Acc:
			m.acc += in.Arg
			m.pc++
		case Jmp:
			m.pc += in.Arg
		case Nop:
			m.pc++
		default:
			panic(fmt.Sprintf("handheld: invalid opcode %d at %d", in.Op, m.pc))
		}
	}
}

// Flip swaps instruction i between jmp and nop. It reports false, leaving
// the program untouched, when instruction i is acc.
func (m *Machine) Flip(i int) bool {
	switch m.prog[i].Op {
	case Jmp:
		m.prog[i].Op = Nop
	case Nop:
		m.prog[i].Op = Jmp
	default:
		return false
	}
	return true
}

// Repair tries flipping each jmp or nop in order and returns the index of the
// first flip that makes the program terminate, along with that run's result.
// The winning flip stays applied; failed attempts are undone. ok is false
// when no single flip works, and the program is then unchanged.
func (m *Machine) Repair() (index int, res Result, ok bool) {
	for i := range m.prog {
		if !m.Flip(i) {
			continue
		}
		res = m.Run()
		if res.Status == Terminated {
			return i, res, true
		}
		m.Flip(i)
	}
	return -1, Result{}, false
}
