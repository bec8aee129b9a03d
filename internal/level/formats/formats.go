// Package formats provides pluggable level file format parsers.
//
// Every format decodes into the same File shape. A level may describe its
// bricks as ASCII rows, as an explicit brick list, or both:
//
//	id: walls
//	name: Walls
//	rows:
//	  - "HHHHHHHHHH"
//	  - "#.#.#.#.#."
//	bricks:
//	  - {type: super, x: 4, y: 5}
package formats

import "fmt"

// File is a decoded level file.
type File struct {
	ID     string      `yaml:"id" toml:"id" json:"id"`
	Name   string      `yaml:"name" toml:"name" json:"name"`
	Rows   []string    `yaml:"rows" toml:"rows" json:"rows"`
	Bricks []BrickSpec `yaml:"bricks" toml:"bricks" json:"bricks"`
}

// BrickSpec places a single brick on the grid.
type BrickSpec struct {
	Type string `yaml:"type" toml:"type" json:"type"`
	X    int    `yaml:"x" toml:"x" json:"x"`
	Y    int    `yaml:"y" toml:"y" json:"y"`
}

// Parser decodes one file format.
type Parser func(data []byte) (File, error)

var parsers = map[string]Parser{
	".yaml": ParseYAML,
	".yml":  ParseYAML,
	".toml": ParseTOML,
	".json": ParseJSON,
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml", ".json"}
}

// Parse routes data to the parser registered for ext.
func Parse(data []byte, ext string) (File, error) {
	p, ok := parsers[ext]
	if !ok {
		return File{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	return p(data)
}
