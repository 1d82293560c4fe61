package modelio

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/causalgo/sempler/lganm"
)

// ErrBadSpec is returned when a model description is malformed; the wrapped
// message names the offending field.
var ErrBadSpec = errors.New("modelio: invalid model description")

// RangeSpec is a uniform construction-time sampling range [Lo, Hi).
type RangeSpec struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// ParamSpec describes one per-node parameter vector: exactly one of Values
// (fixed, length d) or Range must be set.
type ParamSpec struct {
	Values []float64  `yaml:"values,omitempty"`
	Range  *RangeSpec `yaml:"range,omitempty"`
}

// ModelSpec is the on-disk description of a linear-Gaussian SCM.
type ModelSpec struct {
	Nodes     int         `yaml:"nodes"`
	Weights   [][]float64 `yaml:"weights"`
	Means     ParamSpec   `yaml:"means"`
	Variances ParamSpec   `yaml:"variances"`
	Seed      int64       `yaml:"seed,omitempty"`
}

// Parse decodes a model description from YAML bytes and validates it.
// Used both for files and for descriptions carried as payload.
func Parse(data []byte) (*ModelSpec, error) {
	var spec ModelSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSpec, err)
	}
	if err := validate(&spec); err != nil {
		return nil, err
	}

	return &spec, nil
}

// ParseString decodes a model description from a YAML string.
func ParseString(text string) (*ModelSpec, error) {
	return Parse([]byte(text))
}

// Encode renders the description back to YAML.
func Encode(spec *ModelSpec) ([]byte, error) {
	if spec == nil {
		return nil, fmt.Errorf("nil spec: %w", ErrBadSpec)
	}
	out, err := yaml.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSpec, err)
	}

	return out, nil
}

// Build constructs the described model. Structural validation (acyclicity,
// variance signs) is lganm.New's job; Build only translates the fields.
func (s *ModelSpec) Build() (*lganm.LGANM, error) {
	if err := validate(s); err != nil {
		return nil, err
	}

	return lganm.New(s.Weights,
		toParam(s.Means), toParam(s.Variances),
		lganm.WithConstructionSeed(s.Seed))
}

func toParam(p ParamSpec) lganm.Param {
	if p.Range != nil {
		return lganm.Range(p.Range.Lo, p.Range.Hi)
	}

	return lganm.Fixed(p.Values...)
}

// validate enforces the description-level rules eagerly, so a bad file is
// rejected with a named field rather than surfacing later as a model error.
func validate(s *ModelSpec) error {
	if s.Nodes < 1 {
		return fmt.Errorf("nodes=%d must be positive: %w", s.Nodes, ErrBadSpec)
	}
	if len(s.Weights) != s.Nodes {
		return fmt.Errorf("weights has %d rows, want %d: %w", len(s.Weights), s.Nodes, ErrBadSpec)
	}
	for i, row := range s.Weights {
		if len(row) != s.Nodes {
			return fmt.Errorf("weights row %d has %d entries, want %d: %w", i, len(row), s.Nodes, ErrBadSpec)
		}
	}
	if err := validateParam("means", s.Means, s.Nodes); err != nil {
		return err
	}
	if err := validateParam("variances", s.Variances, s.Nodes); err != nil {
		return err
	}
	if s.Variances.Range != nil && s.Variances.Range.Lo < 0 {
		return fmt.Errorf("variances range lo=%g must be non-negative: %w", s.Variances.Range.Lo, ErrBadSpec)
	}
	for j, v := range s.Variances.Values {
		if v < 0 {
			return fmt.Errorf("variances[%d]=%g must be non-negative: %w", j, v, ErrBadSpec)
		}
	}

	return nil
}

func validateParam(name string, p ParamSpec, d int) error {
	switch {
	case p.Range != nil && p.Values != nil:
		return fmt.Errorf("%s carries both values and range: %w", name, ErrBadSpec)
	case p.Range == nil && p.Values == nil:
		return fmt.Errorf("%s carries neither values nor range: %w", name, ErrBadSpec)
	case p.Range != nil && p.Range.Lo > p.Range.Hi:
		return fmt.Errorf("%s range [%g,%g) is inverted: %w", name, p.Range.Lo, p.Range.Hi, ErrBadSpec)
	case p.Values != nil && len(p.Values) != d:
		return fmt.Errorf("%s has %d values, want %d: %w", name, len(p.Values), d, ErrBadSpec)
	}

	return nil
}
