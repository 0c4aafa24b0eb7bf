package testcases

// Diagonal contact does not join regions under 4-connectivity, so
// checkerboards decompose into single-cell regions.
var diagonalCases = []TestCase{
	tc("checkerboard_2x2", 4, 0,
		"#.",
		".#",
	),
	tc("checkerboard_4x4", 16, 0,
		"#.#.",
		".#.#",
		"#.#.",
		".#.#",
	),
	tc("diagonal_line", 6, 0,
		"#...",
		".#..",
		"..#.",
		"...#",
	),
}
