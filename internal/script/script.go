// Package script evaluates YAML scripts of vector and transform-stack
// operations. It is the engine behind `glmtool eval`.
//
// A script looks like:
//
//	vectors:
//	  a: [1, 2, 3]
//	  b: {x: 4, y: 5, z: 6}
//	steps:
//	  - {op: add, args: [a, b], out: c}
//	  - {op: dot, args: [a, b]}
//	  - {op: push}
//	  - {op: translate, values: [1, 0, 0]}
//	  - {op: transform, args: [c], out: d}
package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/glmath/pkg/math"
)

var (
	ErrUnknownOp     = errors.New("unknown op")
	ErrUnknownVector = errors.New("unknown vector")
	ErrArity         = errors.New("arity mismatch")
	ErrArgs          = errors.New("wrong number of arguments")
)

// Script is a parsed script file.
type Script struct {
	Vectors map[string]Value `yaml:"vectors"`
	Steps   []Step           `yaml:"steps"`
}

// Step is one operation.
type Step struct {
	Op     string        `yaml:"op"`
	Args   []string      `yaml:"args,omitempty"`
	Scalar *math.Scalar  `yaml:"scalar,omitempty"`
	Values []math.Scalar `yaml:"values,omitempty"`
	Out    string        `yaml:"out,omitempty"`
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script and checks that every vector has components and
// every step names an op.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if err := s.checkVectors(); err != nil {
		return nil, err
	}
	for i, st := range s.Steps {
		if st.Op == "" {
			return nil, fmt.Errorf("step %d: missing op", i+1)
		}
	}
	return &s, nil
}

// checkVectors rejects declared vectors without components, which YAML
// produces for null entries.
func (s *Script) checkVectors() error {
	for name, v := range s.Vectors {
		if v.Arity() < 2 {
			return fmt.Errorf("%w: vector %q has %d components", ErrArity, name, v.Arity())
		}
	}
	return nil
}
