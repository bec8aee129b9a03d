package formats

import (
	"encoding/json"
	"fmt"
)

// ParseJSON parses a JSON level file.
func ParseJSON(data []byte) (File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return f, nil
}
