package arrangeview

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Read parses an arrangement from YAML or JSON and clamps it into a valid
// state. Whatever the bytes said, the returned arrangement satisfies the
// model invariants.
func Read(r io.Reader) (Arrangement, error) {
	var a Arrangement
	b, err := io.ReadAll(r)
	if err != nil {
		return a, err
	}
	if errJSON := json.Unmarshal(b, &a); errJSON != nil {
		if errYaml := yaml.Unmarshal(b, &a); errYaml != nil {
			return Arrangement{}, fmt.Errorf("unmarshaling an arrangement file: %v / %v", errYaml, errJSON)
		}
	}
	a.Clamp()
	return a, nil
}

// Write serializes the arrangement as YAML.
func (a *Arrangement) Write(w io.Writer) error {
	contents, err := yaml.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshaling an arrangement: %w", err)
	}
	_, err = w.Write(contents)
	return err
}
