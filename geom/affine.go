package geom

import "github.com/chewxy/math32"

// Builders for affine transforms. The in-place forms post-multiply, so
// m.Translate(v) is m = m * T(v) and the new transform is applied first.

func NewTranslateMatrix4(x, y, z Element) *Matrix4 {
	return &Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	}
}

func NewTranslateMatrix4V(v *Vector3) *Matrix4 {
	return NewTranslateMatrix4(v.X, v.Y, v.Z)
}

// TranslateTo stores m * T(v) in dest. dest may be m.
func (m *Matrix4) TranslateTo(v *Vector3, dest *Matrix4) *Matrix4 {
	if dest != m {
		*dest = *m
	}
	for j := 0; j < 4; j++ {
		dest[3][j] += m[0][j]*v.X + m[1][j]*v.Y + m[2][j]*v.Z
	}
	return dest
}

func (m *Matrix4) Translate(v *Vector3) *Matrix4 {
	return m.TranslateTo(v, m)
}

func (m *Matrix4) TranslateX(d Element) *Matrix4 {
	return m.TranslateTo(&Vector3{X: d}, m)
}

func (m *Matrix4) TranslateY(d Element) *Matrix4 {
	return m.TranslateTo(&Vector3{Y: d}, m)
}

func (m *Matrix4) TranslateZ(d Element) *Matrix4 {
	return m.TranslateTo(&Vector3{Z: d}, m)
}

func NewScaleMatrix4(x, y, z Element) *Matrix4 {
	return &Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

func NewScaleMatrix4V(v *Vector3) *Matrix4 {
	return NewScaleMatrix4(v.X, v.Y, v.Z)
}

// ScaleTo multiplies column i of m by the i-th component of v and stores the
// result in dest. The translation column is copied as is. dest may be m.
func (m *Matrix4) ScaleTo(v *Vector3, dest *Matrix4) *Matrix4 {
	for i, s := range [3]Element{v.X, v.Y, v.Z} {
		for j := 0; j < 4; j++ {
			dest[i][j] = m[i][j] * s
		}
	}
	dest[3] = m[3]
	return dest
}

func (m *Matrix4) Scale(v *Vector3) *Matrix4 {
	return m.ScaleTo(v, m)
}

func (m *Matrix4) ScaleUniform(s Element) *Matrix4 {
	return m.ScaleTo(&Vector3{X: s, Y: s, Z: s}, m)
}

// NewRotationMatrix4 builds a rotation of angle radians around axis
// (Rodrigues' formula). axis need not be normalized but must not be zero;
// a zero axis gives NaN elements. See NewRotationMatrix4Checked.
func NewRotationMatrix4(angle Element, axis *Vector3) *Matrix4 {
	var axisn Vector3
	s, c := math32.Sincos(angle)

	axis.NormalizeTo(&axisn)
	v := axisn.Scale(1 - c)
	vs := axisn.Scale(s)

	m := &Matrix4{}
	for i, vi := range [3]Element{v.X, v.Y, v.Z} {
		m[i] = [4]Element{axisn.X * vi, axisn.Y * vi, axisn.Z * vi, 0}
	}

	m[0][0] += c
	m[1][0] -= vs.Z
	m[2][0] += vs.Y
	m[0][1] += vs.Z
	m[1][1] += c
	m[2][1] -= vs.X
	m[0][2] -= vs.Y
	m[1][2] += vs.X
	m[2][2] += c

	m[3] = [4]Element{0, 0, 0, 1}
	return m
}

// NewRotationMatrix4FromQuaternion expects a unit quaternion.
func NewRotationMatrix4FromQuaternion(x, y, z, w Element) *Matrix4 {
	return &Matrix4{
		{1 - 2*y*y - 2*z*z, 2*x*y + 2*z*w, 2*x*z - 2*y*w, 0},
		{2*x*y - 2*z*w, 1 - 2*x*x - 2*z*z, 2*y*z + 2*x*w, 0},
		{2*x*z + 2*y*w, 2*y*z - 2*x*w, 1 - 2*x*x - 2*y*y, 0},
		{0, 0, 0, 1},
	}
}
