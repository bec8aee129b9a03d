package level

// Builtin returns the built-in campaign in play order.
func Builtin() []*Level {
	return []*Level{
		MustParse("01-classic", "Classic", []string{
			"##########",
			"##########",
			"##########",
			"##########",
			"##########",
			"##########",
		}),

		MustParse("02-pyramid", "Pyramid", []string{
			"....##....",
			"...####...",
			"..######..",
			".########.",
			"##########",
		}),

		MustParse("03-checker", "Checkerboard", []string{
			"#.#.#.#.#.",
			".#.#.#.#.#",
			"#.#.#.#.#.",
			".#.#.#.#.#",
			"#.#.#.#.#.",
			".#.#.#.#.#",
		}),

		MustParse("04-diamond", "Diamond", []string{
			"....##....",
			"...####...",
			"..######..",
			".########.",
			"..######..",
			"...####...",
			"....##....",
		}),

		MustParse("05-fortress", "Fortress", []string{
			"HHHHHHHHHH",
			"H........H",
			"H.######.H",
			"H.######.H",
			"H........H",
			"HHHHHHHHHH",
		}),

		MustParse("06-striped", "Striped", []string{
			"##########",
			"..........",
			"HHHHHHHHHH",
			"..........",
			"##########",
		}),

		MustParse("07-castle", "Castle", []string{
			"X.X....X.X",
			"XXX....XXX",
			"..........",
			"##########",
			"##########",
			"##HHHHHH##",
		}),

		MustParse("08-boss", "Final Boss", []string{
			"HHHHHHHHHH",
			"H########H",
			"H##XXXX##H",
			"H########H",
			"H########H",
			"HHHHHHHHHH",
		}),
	}
}
