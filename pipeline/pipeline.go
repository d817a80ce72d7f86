// Package pipeline composes a transform matrix from a list of YAML steps.
//
//	steps:
//	  - translate: [0, 1, 0]
//	  - rotate: {angle: 90, axis: [0, 1, 0], degrees: true}
//	  - scale_uniform: 0.01
//
// Steps post-multiply in order, so the last step is applied to vertices first.
package pipeline

import (
	"errors"
	"fmt"
	"io/ioutil"
	"math"

	"github.com/binzume/affine/geom"
	"gopkg.in/yaml.v2"
)

var ErrInvalidStep = errors.New("invalid step")

type Vec3 [3]float32

func (v Vec3) vector() *geom.Vector3 {
	return geom.NewVector3FromArray(v)
}

type Rotation struct {
	Angle   float32 `yaml:"angle"`
	Axis    Vec3    `yaml:"axis"`
	Pivot   *Vec3   `yaml:"pivot,omitempty"`
	Degrees bool    `yaml:"degrees,omitempty"`
}

func (r *Rotation) radians() float32 {
	if r.Degrees {
		return r.Angle * math.Pi / 180
	}
	return r.Angle
}

// Step holds exactly one operation.
type Step struct {
	Translate    *Vec3     `yaml:"translate,omitempty"`
	Scale        *Vec3     `yaml:"scale,omitempty"`
	ScaleUniform *float32  `yaml:"scale_uniform,omitempty"`
	Rotate       *Rotation `yaml:"rotate,omitempty"`
	RotateAt     *Rotation `yaml:"rotate_at,omitempty"`
	Spin         *Rotation `yaml:"spin,omitempty"`
}

type Recipe struct {
	Name  string  `yaml:"name,omitempty"`
	Steps []*Step `yaml:"steps"`
}

func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.UnmarshalStrict(data, &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func Load(path string) (*Recipe, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (r *Recipe) Marshal() ([]byte, error) {
	return yaml.Marshal(r)
}

// Matrix applies all steps to an identity matrix.
func (r *Recipe) Matrix() (*geom.Matrix4, error) {
	m := geom.NewMatrix4()
	for i, s := range r.Steps {
		if err := s.apply(m); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return m, nil
}

func (s *Step) count() int {
	n := 0
	for _, set := range []bool{
		s.Translate != nil, s.Scale != nil, s.ScaleUniform != nil,
		s.Rotate != nil, s.RotateAt != nil, s.Spin != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

func (s *Step) apply(m *geom.Matrix4) error {
	if s == nil || s.count() != 1 {
		return fmt.Errorf("%w: a step needs exactly one operation", ErrInvalidStep)
	}
	switch {
	case s.Translate != nil:
		m.Translate(s.Translate.vector())
	case s.Scale != nil:
		m.Scale(s.Scale.vector())
	case s.ScaleUniform != nil:
		m.ScaleUniform(*s.ScaleUniform)
	case s.Rotate != nil:
		rot, err := geom.NewRotationMatrix4Checked(s.Rotate.radians(), s.Rotate.Axis.vector())
		if err != nil {
			return err
		}
		geom.MulRotTo(m, rot, m)
	case s.RotateAt != nil:
		if s.RotateAt.Pivot == nil {
			return fmt.Errorf("%w: rotate_at needs a pivot", ErrInvalidStep)
		}
		if _, err := geom.NewRotationMatrix4Checked(0, s.RotateAt.Axis.vector()); err != nil {
			return err
		}
		m.RotateAt(s.RotateAt.Pivot.vector(), s.RotateAt.radians(), s.RotateAt.Axis.vector())
	case s.Spin != nil:
		if _, err := geom.NewRotationMatrix4Checked(0, s.Spin.Axis.vector()); err != nil {
			return err
		}
		m.Spin(s.Spin.radians(), s.Spin.Axis.vector())
	}
	return nil
}
