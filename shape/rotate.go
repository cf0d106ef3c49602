package shape

// rotateBySelector rotates a within the low nibble by the quarter-turn
// selected by the one-hot bit sel (1, 2, 4, or 8 for 0..3 turns).
//
// Identity: multiplying a 4-bit code by a one-hot selector lifts each
// set bit of a by the selector's shift amount; the high nibble that
// spills out is folded back down with an OR, wrapping around the 4-bit
// ring. This is the reference formula from the spec, kept verbatim
// rather than replaced with an equivalent shift/mask pair because it
// is the one piece of bit-twiddling the spec calls out explicitly.
func rotateBySelector(a Code, sel Options) Code {
	p := uint16(a) * uint16(sel)

	return Code((p | p>>4) & 0xf)
}

// Rotate rotates c clockwise by steps quarter turns (0..3).
func Rotate(c Code, steps int) Code {
	return rotateBySelector(c, Bit(steps&0x3))
}

// RotateHalf rotates c by two quarter turns (180 degrees), the
// transform used to view a neighbour's stub pattern from this cell's
// own frame of reference.
func RotateHalf(c Code) Code {
	return Code(((c << 2) | (c >> 2)) & 0xf)
}

// Fanout returns the union of stub patterns obtained by rotating a
// through every quarter turn still permitted by opts. It is the set
// of edges that might be stubbed under some remaining orientation.
func Fanout(a Code, opts Options) Code {
	return rotateBySelector(a, opts&0x1) | rotateBySelector(a, opts&0x2) |
		rotateBySelector(a, opts&0x4) | rotateBySelector(a, opts&0x8)
}
