package geom

import "github.com/chewxy/math32"

// MulAffineTo stores m1*m2 in dest, assuming m2's homogeneous row is
// (0, 0, 0, 1). dest may alias either operand.
func MulAffineTo(m1, m2, dest *Matrix4) *Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m1[0][j]*m2[i][0] + m1[1][j]*m2[i][1] + m1[2][j]*m2[i][2]
		}
	}
	for j := 0; j < 4; j++ {
		r[3][j] += m1[3][j]
	}
	*dest = r
	return dest
}

// MulRotTo stores m*r in dest where r is a pure rotation: only its 3x3 part
// is read and m's translation column is kept.
func MulRotTo(m, r, dest *Matrix4) *Matrix4 {
	var out Matrix4
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[0][j]*r[i][0] + m[1][j]*r[i][1] + m[2][j]*r[i][2]
		}
	}
	out[3] = m[3]
	*dest = out
	return dest
}

// RotateX stores m * Rx(angle) in dest. dest may be m.
func (m *Matrix4) RotateX(angle Element, dest *Matrix4) *Matrix4 {
	s, c := math32.Sincos(angle)
	t := NewMatrix4()
	t[1][1], t[1][2] = c, s
	t[2][1], t[2][2] = -s, c
	return MulRotTo(m, t, dest)
}

func (m *Matrix4) RotateY(angle Element, dest *Matrix4) *Matrix4 {
	s, c := math32.Sincos(angle)
	t := NewMatrix4()
	t[0][0], t[0][2] = c, -s
	t[2][0], t[2][2] = s, c
	return MulRotTo(m, t, dest)
}

func (m *Matrix4) RotateZ(angle Element, dest *Matrix4) *Matrix4 {
	s, c := math32.Sincos(angle)
	t := NewMatrix4()
	t[0][0], t[0][1] = c, s
	t[1][0], t[1][1] = -s, c
	return MulRotTo(m, t, dest)
}

// Rotate post-multiplies m by a rotation around axis.
func (m *Matrix4) Rotate(angle Element, axis *Vector3) *Matrix4 {
	return MulRotTo(m, NewRotationMatrix4(angle, axis), m)
}

// RotateAt rotates m around pivot, which is given in m's local space:
// m = m * T(pivot) * R * T(-pivot).
func (m *Matrix4) RotateAt(pivot *Vector3, angle Element, axis *Vector3) *Matrix4 {
	return MulAffineTo(m, NewRotationAtMatrix4(pivot, angle, axis), m)
}

// NewRotationAtMatrix4 creates T(pivot) * R * T(-pivot).
func NewRotationAtMatrix4(pivot *Vector3, angle Element, axis *Vector3) *Matrix4 {
	m := NewTranslateMatrix4V(pivot)
	MulAffineTo(m, NewRotationMatrix4(angle, axis), m)
	return MulAffineTo(m, NewTranslateMatrix4V(pivot.Scale(-1)), m)
}

// Spin rotates m around its own position. Unlike Rotate it pre-multiplies,
// m = T(p) * R * T(-p) * m with p = m's translation, so the rotation axis is
// in the parent space and the translation column stays where it is.
func (m *Matrix4) Spin(angle Element, axis *Vector3) *Matrix4 {
	rot := NewRotationAtMatrix4(m.Column3(3), angle, axis)
	return rot.MulTo(m, m)
}
