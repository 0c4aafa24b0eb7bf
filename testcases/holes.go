package testcases

var holeCases = []TestCase{
	tc("center_hole_3x3", 2, 1,
		"###",
		"#.#",
		"###",
	),
	tc("ring_thick", 2, 1,
		"######",
		"######",
		"##..##",
		"##..##",
		"######",
		"######",
	),
	tc("nested_rings", 4, 3,
		"#######",
		"#.....#",
		"#.###.#",
		"#.#.#.#",
		"#.###.#",
		"#.....#",
		"#######",
	),
	// The black region touches itself diagonally at a vertex shared by
	// the notch in the top-right corner and the enclosed hole.
	tc("pinched_hole", 3, 1,
		"##.",
		"#.#",
		"###",
	),
	// Two one-cell holes sharing a lattice vertex.
	tc("twin_holes_diagonal", 3, 2,
		"####",
		"#.##",
		"##.#",
		"####",
	),
	tc("slit_hole", 2, 1,
		"#####",
		"#..##",
		"#####",
	),
}
