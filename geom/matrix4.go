package geom

import "github.com/chewxy/math32"

// Matrix4 is a column-major 4x4 matrix: m[i] is column i and m[i][j] is
// row j of that column. Translation lives in m[3][0..2].
type Matrix4 [4][4]Element

func NewMatrix4() *Matrix4 {
	return &Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewMatrix4FromSlice reads 16 column-major elements (glTF / OpenGL order).
func NewMatrix4FromSlice(a []Element) *Matrix4 {
	mat := &Matrix4{}
	for i := 0; i < 4; i++ {
		copy(mat[i][:], a[i*4:i*4+4])
	}
	return mat
}

func NewMatrix4FromArray(a [16]Element) *Matrix4 {
	return NewMatrix4FromSlice(a[:])
}

// Identity resets m to the identity matrix.
func (m *Matrix4) Identity() *Matrix4 {
	*m = Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
	return m
}

func (m *Matrix4) Column(i int) *Vector4 {
	return &Vector4{X: m[i][0], Y: m[i][1], Z: m[i][2], W: m[i][3]}
}

func (m *Matrix4) Column3(i int) *Vector3 {
	return &Vector3{X: m[i][0], Y: m[i][1], Z: m[i][2]}
}

func (m *Matrix4) SetColumn(i int, v *Vector4) {
	m[i] = [4]Element{v.X, v.Y, v.Z, v.W}
}

// Mul returns b*a.
func (b *Matrix4) Mul(a *Matrix4) *Matrix4 {
	return b.MulTo(a, &Matrix4{})
}

// MulTo stores b*a in dest. dest may alias either operand.
func (b *Matrix4) MulTo(a *Matrix4, dest *Matrix4) *Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = b[0][j]*a[i][0] + b[1][j]*a[i][1] + b[2][j]*a[i][2] + b[3][j]*a[i][3]
		}
	}
	*dest = r
	return dest
}

func (m *Matrix4) MulVector4(v *Vector4) *Vector4 {
	return &Vector4{
		X: m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z + m[3][0]*v.W,
		Y: m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z + m[3][1]*v.W,
		Z: m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z + m[3][2]*v.W,
		W: m[0][3]*v.X + m[1][3]*v.Y + m[2][3]*v.Z + m[3][3]*v.W,
	}
}

// ApplyTo transforms a point (w = 1). The homogeneous row is ignored.
func (m *Matrix4) ApplyTo(v *Vector3) *Vector3 {
	return &Vector3{
		m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z + m[3][0],
		m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z + m[3][1],
		m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z + m[3][2],
	}
}

// ApplyToDirection transforms a direction (w = 0).
func (m *Matrix4) ApplyToDirection(v *Vector3) *Vector3 {
	return &Vector3{
		m[0][0]*v.X + m[1][0]*v.Y + m[2][0]*v.Z,
		m[0][1]*v.X + m[1][1]*v.Y + m[2][1]*v.Z,
		m[0][2]*v.X + m[1][2]*v.Y + m[2][2]*v.Z,
	}
}

func (m *Matrix4) Det() float32 {
	var (
		a, b, c, d = m[0][0], m[0][1], m[0][2], m[0][3]
		e, f, g, h = m[1][0], m[1][1], m[1][2], m[1][3]
		i, j, k, l = m[2][0], m[2][1], m[2][2], m[2][3]
		p, q, r, s = m[3][0], m[3][1], m[3][2], m[3][3]

		t0 = k*s - r*l
		t1 = j*s - q*l
		t2 = j*r - q*k
		t3 = i*s - p*l
		t4 = i*r - p*k
		t5 = i*q - p*j
	)
	return a*(f*t0-g*t1+h*t2) -
		b*(e*t0-g*t3+h*t4) +
		c*(e*t1-f*t3+h*t5) -
		d*(e*t2-f*t4+g*t5)
}

// Inverse returns the inverse of m, or a zero matrix when m is singular.
func (m *Matrix4) Inverse() *Matrix4 {
	var (
		a, b, c, d = m[0][0], m[0][1], m[0][2], m[0][3]
		e, f, g, h = m[1][0], m[1][1], m[1][2], m[1][3]
		i, j, k, l = m[2][0], m[2][1], m[2][2], m[2][3]
		p, q, r, s = m[3][0], m[3][1], m[3][2], m[3][3]
		dst        Matrix4
	)

	t0, t1, t2 := k*s-r*l, j*s-q*l, j*r-q*k
	t3, t4, t5 := i*s-p*l, i*r-p*k, i*q-p*j
	dst[0][0] = f*t0 - g*t1 + h*t2
	dst[1][0] = -(e*t0 - g*t3 + h*t4)
	dst[2][0] = e*t1 - f*t3 + h*t5
	dst[3][0] = -(e*t2 - f*t4 + g*t5)
	dst[0][1] = -(b*t0 - c*t1 + d*t2)
	dst[1][1] = a*t0 - c*t3 + d*t4
	dst[2][1] = -(a*t1 - b*t3 + d*t5)
	dst[3][1] = a*t2 - b*t4 + c*t5

	t0, t1, t2 = g*s-r*h, f*s-q*h, f*r-q*g
	t3, t4, t5 = e*s-p*h, e*r-p*g, e*q-p*f
	dst[0][2] = b*t0 - c*t1 + d*t2
	dst[1][2] = -(a*t0 - c*t3 + d*t4)
	dst[2][2] = a*t1 - b*t3 + d*t5
	dst[3][2] = -(a*t2 - b*t4 + c*t5)

	t0, t1, t2 = g*l-k*h, f*l-j*h, f*k-j*g
	t3, t4, t5 = e*l-i*h, e*k-i*g, e*j-i*f
	dst[0][3] = -(b*t0 - c*t1 + d*t2)
	dst[1][3] = a*t0 - c*t3 + d*t4
	dst[2][3] = -(a*t1 - b*t3 + d*t5)
	dst[3][3] = a*t2 - b*t4 + c*t5

	det := a*dst[0][0] + b*dst[1][0] + c*dst[2][0] + d*dst[3][0]
	if det == 0 {
		return &Matrix4{}
	}
	inv := 1 / det
	for col := range dst {
		for row := range dst[col] {
			dst[col][row] *= inv
		}
	}
	return &dst
}

func (m *Matrix4) Transposed() *Matrix4 {
	return &Matrix4{
		{m[0][0], m[1][0], m[2][0], m[3][0]},
		{m[0][1], m[1][1], m[2][1], m[3][1]},
		{m[0][2], m[1][2], m[2][2], m[3][2]},
		{m[0][3], m[1][3], m[2][3], m[3][3]},
	}
}

func (m *Matrix4) Clone() *Matrix4 {
	r := *m
	return &r
}

// ToArray writes the 16 elements in column-major order.
func (m *Matrix4) ToArray(a []Element) {
	for i := 0; i < 4; i++ {
		copy(a[i*4:i*4+4], m[i][:])
	}
}

// IsAffine reports whether the homogeneous row is exactly (0, 0, 0, 1).
func (m *Matrix4) IsAffine() bool {
	return m[0][3] == 0 && m[1][3] == 0 && m[2][3] == 0 && m[3][3] == 1
}

func (m *Matrix4) ApproxEqual(m2 *Matrix4, eps Element) bool {
	for i := range m {
		for j := range m[i] {
			if Abs(m[i][j]-m2[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

func Abs(v Element) Element {
	return math32.Abs(v)
}
