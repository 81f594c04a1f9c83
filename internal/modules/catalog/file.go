// README: YAML catalog import/export.
package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a YAML catalog. Unknown keys are rejected so typos in
// hand-edited files surface at load time.
func Decode(r io.Reader) (*Catalog, error) {
	var data Data
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("catalog: decode yaml: %w", err)
	}
	return New(data)
}

func (c *Catalog) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c.Data()); err != nil {
		return fmt.Errorf("catalog: encode yaml: %w", err)
	}
	return enc.Close()
}
