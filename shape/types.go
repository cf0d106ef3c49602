package shape

// Code is a 4-bit pattern of connection stubs under a cell's canonical
// (zero-rotation) orientation. Only the low 4 bits are meaningful.
type Code uint8

// Recognized shapes, named by their stub count and arrangement.
const (
	Empty     Code = 0x0 // no stubs
	DeadEnd   Code = 0x1 // single stub, facing north in canonical form
	Corner    Code = 0x3 // two adjacent stubs (north, east)
	Straight  Code = 0x5 // two opposite stubs (north, south)
	TJunction Code = 0x7 // three stubs (north, east, south)
	Cross     Code = 0xf // all four stubs
)

// Direction bit positions within a Code.
const (
	North = 0
	East  = 1
	South = 2
	West  = 3
)

// Options is a 4-bit mask over the four quarter-turn rotations (0..3)
// of a cell's Code. Bit i set means "rotating clockwise by i quarter
// turns is still a permitted orientation". Popcount >= 2 is
// unresolved, popcount == 1 is resolved, 0 is a contradiction.
type Options uint8

// FullOptions is the mask with every rotation permitted.
const FullOptions Options = 0xf

// Bit returns the single-rotation Options mask selecting quarter-turn i.
func Bit(i int) Options {
	return Options(1) << uint(i)
}
