package testcases

var multicolorCases = []TestCase{
	tc("three_stripes", 3, 0,
		"rrrr",
		"gggg",
		"bbbb",
	),
	tc("rgb_target", 3, 2,
		"rrrrr",
		"rgggr",
		"rgbgr",
		"rgggr",
		"rrrrr",
	),
	tc("letter_e", 2, 0,
		"####.",
		"#....",
		"###..",
		"#....",
		"####.",
	),
	tc("quadrants", 4, 0,
		"rrgg",
		"rrgg",
		"bb##",
		"bb##",
	),
}
