package render

// glyphs maps a 4-bit {north, east, south, west} stub mask to the
// Unicode box-drawing character for a cell carrying exactly those
// stubs. Index 0 (no stubs) prints as a space.
var glyphs = [16]rune{
	0x0: ' ',
	0x1: '╵',
	0x2: '╶',
	0x3: '╰',
	0x4: '╷',
	0x5: '│',
	0x6: '╭',
	0x7: '├',
	0x8: '╴',
	0x9: '╯',
	0xa: '─',
	0xb: '┴',
	0xc: '╮',
	0xd: '┤',
	0xe: '┬',
	0xf: '┼',
}
