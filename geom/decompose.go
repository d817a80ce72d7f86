package geom

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

var (
	ErrDegenerate = errors.New("degenerate transform")
	ErrProjective = errors.New("projective transform")
)

// DegenerateError describes which input made a checked operation fail.
type DegenerateError struct {
	Op   string
	Axis int // column index, or -1 for a rotation axis
}

func (e *DegenerateError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("%s: zero or non-finite rotation axis", e.Op)
	}
	return fmt.Sprintf("%s: column %d has zero scale", e.Op, e.Axis)
}

func (e *DegenerateError) Unwrap() error {
	return ErrDegenerate
}

// DecomposeScale returns the length of each basis column. It is exact for a
// rotation composed with a scale.
func (m *Matrix4) DecomposeScale() *Vector3 {
	return m.DecomposeScaleTo(&Vector3{})
}

func (m *Matrix4) DecomposeScaleTo(s *Vector3) *Vector3 {
	s.X = m.Column3(0).Len()
	s.Y = m.Column3(1).Len()
	s.Z = m.Column3(2).Len()
	return s
}

// IsUniformlyScaled reports whether all three column lengths are equal.
// Such a matrix can transform normals without an inverse-transpose.
func (m *Matrix4) IsUniformlyScaled() bool {
	return m.DecomposeScale().EqualAll()
}

// DecomposeRS splits the linear part of m into a rotation and a scale vector.
// Don't pass a projective matrix. Every scale component must be non-zero.
func (m *Matrix4) DecomposeRS() (*Matrix4, *Vector3) {
	r, s := &Matrix4{}, &Vector3{}
	m.DecomposeRSTo(r, s)
	return r, s
}

// DecomposeRSTo writes the rotation into r and the scale into s.
// r must not alias m.
func (m *Matrix4) DecomposeRSTo(r *Matrix4, s *Vector3) {
	r[0], r[1], r[2] = m[0], m[1], m[2]
	r[3] = [4]Element{0, 0, 0, 1}

	m.DecomposeScaleTo(s)

	for i, si := range [3]Element{s.X, s.Y, s.Z} {
		inv := 1 / si
		for j := 0; j < 4; j++ {
			r[i][j] *= inv
		}
	}

	// A left-handed basis means the transform mirrors. Keep r a proper
	// rotation and move the flip into the scale.
	if m.Column3(0).Cross(m.Column3(1)).Dot(m.Column3(2)) < 0 {
		for i := 0; i < 3; i++ {
			for j := 0; j < 4; j++ {
				r[i][j] = -r[i][j]
			}
		}
		s.Negate()
	}
}

// Decompose returns translation, rotation and scale of an affine transform.
// Shear is not extracted: a sheared input gives a meaningless rotation.
func (m *Matrix4) Decompose() (*Vector4, *Matrix4, *Vector3) {
	t, r, s := &Vector4{}, &Matrix4{}, &Vector3{}
	m.DecomposeTo(t, r, s)
	return t, r, s
}

func (m *Matrix4) DecomposeTo(t *Vector4, r *Matrix4, s *Vector3) {
	*t = *m.Column(3)
	m.DecomposeRSTo(r, s)
}

// DecomposeChecked is Decompose with the preconditions verified.
func (m *Matrix4) DecomposeChecked() (*Vector4, *Matrix4, *Vector3, error) {
	if !m.IsAffine() {
		return nil, nil, nil, fmt.Errorf("decompose: %w", ErrProjective)
	}
	for i := 0; i < 3; i++ {
		if l := m.Column3(i).Len(); l == 0 || !isFinite(l) {
			return nil, nil, nil, &DegenerateError{Op: "decompose", Axis: i}
		}
	}
	t, r, s := m.Decompose()
	return t, r, s, nil
}

// NewRotationMatrix4Checked is NewRotationMatrix4 rejecting a zero axis.
func NewRotationMatrix4Checked(angle Element, axis *Vector3) (*Matrix4, error) {
	if l := axis.Len(); l == 0 || !isFinite(l) {
		return nil, &DegenerateError{Op: "rotate", Axis: -1}
	}
	return NewRotationMatrix4(angle, axis), nil
}

func isFinite(v Element) bool {
	return !math32.IsInf(v, 0) && !math32.IsNaN(v)
}
