package leveldata

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// platformDoc is the YAML view of a platform.
type platformDoc struct {
	ID    int        `yaml:"id"`
	Kind  Kind       `yaml:"kind"`
	Level int        `yaml:"level"`
	Pos   [3]float64 `yaml:"position,flow"`
	Size  [3]float64 `yaml:"size,flow"`
}

type towerDoc struct {
	Levels    int           `yaml:"levels"`
	Platforms []platformDoc `yaml:"platforms"`
}

// WriteYAML dumps the layout for inspection. Layouts are never read back.
func (t *Tower) WriteYAML(w io.Writer) error {
	doc := towerDoc{Levels: t.Config.TotalLevels}
	for id, p := range t.Platforms {
		doc.Platforms = append(doc.Platforms, platformDoc{
			ID:    id,
			Kind:  p.Kind,
			Level: p.Level,
			Pos:   [3]float64(p.Position),
			Size:  [3]float64(p.HalfExtents.Mul(2)),
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode tower: %w", err)
	}
	return enc.Close()
}
