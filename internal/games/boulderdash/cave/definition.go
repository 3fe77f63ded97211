package cave

import (
	"errors"
	"fmt"
)

// Levels is the number of difficulty levels every cave carries data for.
const Levels = 5

// HeaderSize is the length of the fixed cave header preceding the
// instruction stream.
const HeaderSize = 32

// EndOfProgram terminates the instruction stream.
const EndOfProgram = 0xFF

// yOffset is subtracted from every y operand in the instruction stream.
const yOffset = 2

// Op is a placement instruction opcode, stored in the top two bits of the
// instruction byte.
type Op uint8

const (
	OpPlot Op = iota
	OpLine
	OpFilledRect
	OpOpenRect
)

var opOperands = [4]int{OpPlot: 2, OpLine: 4, OpFilledRect: 5, OpOpenRect: 4}

// String returns the opcode name.
func (op Op) String() string {
	switch op {
	case OpPlot:
		return "plot"
	case OpLine:
		return "line"
	case OpFilledRect:
		return "filled-rect"
	case OpOpenRect:
		return "open-rect"
	default:
		return "unknown"
	}
}

// RandomObject is one (object, threshold) pair of the random fill. A roll
// below Threshold places Code.
type RandomObject struct {
	Code      byte
	Threshold byte
}

// Instruction is one decoded entry of the placement stream. Y is the raw
// operand; the legacy offset is applied when the instruction is drawn.
type Instruction struct {
	Op     Op
	Code   byte
	X      int
	Y      int
	Length int // line length or rectangle width
	Height int // rectangle height
	Dir    int // line direction, index into the 8-way table
	Fill   byte
}

// Definition is the immutable description of one cave.
type Definition struct {
	ID                uint8
	MagicWallTime     uint8 // seconds; also the amoeba slow-growth period
	DiamondValue      uint8
	ExtraDiamondValue uint8
	Seeds             [Levels]uint8
	DiamondsNeeded    [Levels]uint8
	CaveTime          [Levels]uint8 // seconds
	Colors            [5]uint8
	Random            [4]RandomObject
	Program           []Instruction

	raw []byte
}

var (
	ErrShortHeader   = errors.New("cave: definition shorter than header")
	ErrNoTerminator  = errors.New("cave: instruction stream not terminated")
	ErrTruncatedOp   = errors.New("cave: truncated instruction operands")
	ErrTrailingBytes = errors.New("cave: bytes after end of program")
)

// ParseDefinition parses a cave blob: a 32-byte header followed by the
// instruction stream and the 0xFF terminator.
func ParseDefinition(data []byte) (*Definition, error) {
	if len(data) < HeaderSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortHeader, len(data))
	}
	d := &Definition{
		ID:                data[0],
		MagicWallTime:     data[1],
		DiamondValue:      data[2],
		ExtraDiamondValue: data[3],
		raw:               append([]byte(nil), data...),
	}
	copy(d.Seeds[:], data[4:9])
	copy(d.DiamondsNeeded[:], data[9:14])
	copy(d.CaveTime[:], data[14:19])
	copy(d.Colors[:], data[19:24])
	for i := range d.Random {
		d.Random[i] = RandomObject{Code: data[24+i], Threshold: data[28+i]}
	}

	i := HeaderSize
	for {
		if i >= len(data) {
			return nil, ErrNoTerminator
		}
		b := data[i]
		if b == EndOfProgram {
			i++
			break
		}
		op := Op(b >> 6)
		n := opOperands[op]
		if i+n >= len(data) {
			return nil, fmt.Errorf("%w: %s at offset %d", ErrTruncatedOp, op, i)
		}
		args := data[i+1 : i+1+n]
		in := Instruction{Op: op, Code: b & 0x3F, X: int(args[0]), Y: int(args[1])}
		switch op {
		case OpLine:
			in.Length = int(args[2])
			in.Dir = int(args[3])
			if in.Dir >= len(lineDirs) {
				return nil, fmt.Errorf("cave: line direction %d at offset %d", in.Dir, i)
			}
		case OpFilledRect:
			in.Length = int(args[2])
			in.Height = int(args[3])
			in.Fill = args[4]
		case OpOpenRect:
			in.Length = int(args[2])
			in.Height = int(args[3])
		}
		d.Program = append(d.Program, in)
		i += 1 + n
	}
	if i != len(data) {
		return nil, fmt.Errorf("%w: %d extra", ErrTrailingBytes, len(data)-i)
	}
	return d, nil
}

// MustParse is ParseDefinition for compiled-in cave data, where a parse
// failure is a defect.
func MustParse(data []byte) *Definition {
	d, err := ParseDefinition(data)
	if err != nil {
		panic(err)
	}
	return d
}

// Bytes returns a copy of the blob the definition was parsed from.
func (d *Definition) Bytes() []byte {
	return append([]byte(nil), d.raw...)
}

func checkLevel(level int) {
	if level < 0 || level >= Levels {
		panic(fmt.Sprintf("cave: difficulty level %d outside 0..%d", level, Levels-1))
	}
}

// Seed returns the random seed for the given level.
func (d *Definition) Seed(level int) uint8 {
	checkLevel(level)
	return d.Seeds[level]
}

// Needed returns the diamond quota for the given level.
func (d *Definition) Needed(level int) int {
	checkLevel(level)
	return int(d.DiamondsNeeded[level])
}

// Time returns the cave time in seconds for the given level.
func (d *Definition) Time(level int) int {
	checkLevel(level)
	return int(d.CaveTime[level])
}
