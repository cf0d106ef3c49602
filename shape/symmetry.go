package shape

// InitialOptions returns the starting options mask for a cell carrying
// Code c, honouring rotational symmetry so the search never wastes a
// branch on an orientation indistinguishable from another.
//
//   - Empty and Cross are invariant under any 90-degree rotation: a
//     single orientation, mask 0x1.
//   - Straight is invariant only under a 180-degree rotation: two
//     distinct orientations, mask 0x3.
//   - Everything else (Corner, T-junction, Dead-end) gets the full
//     0xf. Dead-end's check (shape>>2 == shape&0x3) happens to fail
//     for 0x1, so it is not narrowed further here; that is correct,
//     if slightly wasteful, and preserved on purpose.
func InitialOptions(c Code) Options {
	if c == Empty || c == Cross {
		return 0x1
	}
	if c>>2 == c&0x3 {
		return 0x3
	}

	return FullOptions
}
