package level

import (
	"encoding/json"
	"os"
)

// Pack is a set of levels loadable from disk, so custom layouts can ship
// without a rebuild.
type Pack struct {
	Name   string  `json:"name"`
	Levels []Level `json:"levels"`
}

// SaveJSON writes the pack to a JSON file.
func (p *Pack) SaveJSON(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON loads a pack from a JSON file. Every level is validated up front
// so a bad grid fails at load time, not mid-game.
func LoadJSON(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p Pack
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	for _, l := range p.Levels {
		if err := l.Validate(); err != nil {
			return nil, err
		}
	}
	return &p, nil
}
