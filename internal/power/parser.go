package power

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeError reports a power file whose content is not a well-formed YAML
// document.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing power: %v", e.Err)
	}
	return fmt.Sprintf("parsing power file %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Parse parses a power YAML document. path is used only for error reporting
// and may be empty.
//
// Precondition: data must be valid YAML.
// Postcondition: returns a non-nil Power or a non-nil *DecodeError.
func Parse(path string, data []byte) (*Power, error) {
	var p Power
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return &p, nil
}
