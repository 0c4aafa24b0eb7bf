package testcases

var basicCases = []TestCase{
	tc("single_pixel", 1, 0,
		"#",
	),
	tc("uniform_2x2", 1, 0,
		"##",
		"##",
	),
	tc("uniform_row", 1, 0,
		"######",
	),
	tc("uniform_column", 1, 0,
		"#",
		"#",
		"#",
		"#",
	),
	tc("two_halves", 2, 0,
		"##..",
		"##..",
	),
	tc("stripes", 5, 0,
		"#.#.#",
	),
	tc("l_shape", 2, 0,
		"#..",
		"#..",
		"###",
	),
}
