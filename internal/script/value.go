package script

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/glmath/pkg/math"
	"github.com/Faultbox/glmath/pkg/math/plain"
)

// Value is a vector of arity 2, 3 or 4 as read from a script.
type Value struct {
	n int
	f [4]math.Scalar
}

func FromVec2(v math.Vec2) Value { return Value{n: 2, f: [4]math.Scalar{v[0], v[1]}} }
func FromVec3(v math.Vec3) Value { return Value{n: 3, f: [4]math.Scalar{v[0], v[1], v[2]}} }
func FromVec4(v math.Vec4) Value { return Value{n: 4, f: v} }

// Arity returns the number of components.
func (v Value) Arity() int { return v.n }

// Components returns the components as a slice.
func (v Value) Components() []math.Scalar { return v.f[:v.n] }

func (v Value) vec2() math.Vec2 { return math.Vec2{v.f[0], v.f[1]} }
func (v Value) vec3() math.Vec3 { return math.Vec3{v.f[0], v.f[1], v.f[2]} }
func (v Value) vec4() math.Vec4 { return v.f }

// views lists the component names a mapping may use, per arity. A mapping
// must name every component of exactly one view.
var views = [][]string{
	{"x", "y"},
	{"w", "h"},
	{"u", "v"},
	{"x", "y", "z"},
	{"r", "g", "b"},
	{"x", "y", "z", "w"},
	{"r", "g", "b", "a"},
}

// UnmarshalYAML accepts either a flow list ([1, 2, 3]) or a mapping using
// the names of one view: {x, y}, {w, h}, {u, v}, {x, y, z}, {r, g, b},
// {x, y, z, w} or {r, g, b, a}.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var comps []math.Scalar
		if err := node.Decode(&comps); err != nil {
			return err
		}
		if len(comps) < 2 || len(comps) > 4 {
			return fmt.Errorf("line %d: vector needs 2 to 4 components, got %d", node.Line, len(comps))
		}
		*v = Value{n: len(comps)}
		copy(v.f[:], comps)
		return nil

	case yaml.MappingNode:
		comps := make(map[string]*yaml.Node, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if _, dup := comps[key]; dup {
				return fmt.Errorf("line %d: component %q given twice", node.Content[i].Line, key)
			}
			comps[key] = node.Content[i+1]
		}
		view := matchView(comps)
		if view == nil {
			return fmt.Errorf("line %d: %s do not name the components of a vector view", node.Line, keyList(node))
		}
		out := Value{n: len(view)}
		for i, name := range view {
			if comps[name].ShortTag() == "!!null" {
				return fmt.Errorf("line %d: component %s is null", comps[name].Line, name)
			}
			if err := comps[name].Decode(&out.f[i]); err != nil {
				return fmt.Errorf("component %s: %w", name, err)
			}
		}
		*v = out
		return nil
	}
	return fmt.Errorf("line %d: vector must be a list or a mapping", node.Line)
}

func matchView(comps map[string]*yaml.Node) []string {
	for _, view := range views {
		if len(view) != len(comps) {
			continue
		}
		ok := true
		for _, name := range view {
			if _, found := comps[name]; !found {
				ok = false
				break
			}
		}
		if ok {
			return view
		}
	}
	return nil
}

func keyList(node *yaml.Node) string {
	keys := make([]string, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	return "keys [" + strings.Join(keys, ", ") + "]"
}

// MarshalYAML writes the plain struct layout for the value's arity.
func (v Value) MarshalYAML() (any, error) {
	switch v.n {
	case 2:
		return plain.FromVec2(v.vec2()), nil
	case 3:
		return plain.FromVec3(v.vec3()), nil
	case 4:
		return plain.FromVec4(v.vec4()), nil
	}
	return nil, fmt.Errorf("%w: vector has %d components", ErrArity, v.n)
}

func (v Value) String() string {
	return v.Format(-1)
}

// Format renders the components with the given number of significant
// digits; -1 prints the shortest exact form.
func (v Value) Format(digits int) string {
	parts := make([]string, v.n)
	for i, s := range v.Components() {
		parts[i] = FormatScalar(s, digits)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// FormatScalar renders s with the given number of significant digits.
func FormatScalar(s math.Scalar, digits int) string {
	return strconv.FormatFloat(float64(s), 'g', digits, math.Precision)
}
