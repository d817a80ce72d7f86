package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func isOrthonormal(m *Matrix4, eps Element) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d := m.Column3(i).Dot(m.Column3(j))
			if i == j {
				d -= 1
			}
			if Abs(d) > eps {
				return false
			}
		}
	}
	return true
}

func TestDecomposeMatrix(t *testing.T) {
	const eps = 0.00001
	rnd := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		angle := Element(rnd.Float64() * 2 * math.Pi)
		axis := NewVector3(Element(rnd.Float64()*2-1), Element(rnd.Float64()*2-1), Element(rnd.Float64()*2-1))
		if axis.Len() < 0.01 {
			continue
		}
		pos := NewVector3(Element(rnd.Float64()*20-10), Element(rnd.Float64()*20-10), Element(rnd.Float64()*20-10))
		scale := NewVector3(Element(rnd.Float64()*3+0.5), Element(rnd.Float64()*3+0.5), Element(rnd.Float64()*3+0.5))

		rot := NewRotationMatrix4(angle, axis)
		mat := NewTranslateMatrix4V(pos).Mul(rot).Mul(NewScaleMatrix4V(scale))

		pos1, rot1, scale1 := mat.Decompose()
		if pos.Sub(pos1.XYZ()).Len() > eps || pos1.W != 1 {
			t.Error("pos: ", i, pos, pos1)
		}
		if scale.Sub(scale1).Len() > eps {
			t.Error("scale: ", i, scale, scale1)
		}
		if !rot1.ApproxEqual(rot, eps) {
			t.Error("rot: ", i, rot, rot1)
		}
		if !isOrthonormal(rot1, eps) {
			t.Error("rot is not orthonormal: ", i, rot1)
		}
	}
}

func TestDecomposeTo(t *testing.T) {
	mat := NewTranslateMatrix4(1, 2, 3).Mul(NewScaleMatrix4(2, 3, 4))

	var (
		pos   Vector4
		rot   Matrix4
		scale Vector3
	)
	mat.DecomposeTo(&pos, &rot, &scale)
	if pos != *NewVector4(1, 2, 3, 1) {
		t.Error("pos: ", pos)
	}
	if rot != *NewMatrix4() {
		t.Error("rot: ", rot)
	}
	if scale != *NewVector3(2, 3, 4) {
		t.Error("scale: ", scale)
	}
}

func TestDecomposeScale(t *testing.T) {
	s := NewScaleMatrix4(2, 3, 4).DecomposeScale()
	if *s != *NewVector3(2, 3, 4) {
		t.Error("DecomposeScale: ", s)
	}

	var dst Vector3
	NewRotationMatrix4(1, NewVector3(0, 1, 0)).Scale(NewVector3(5, 5, 5)).DecomposeScaleTo(&dst)
	if dst.Sub(NewVector3(5, 5, 5)).Len() > 0.00001 {
		t.Error("DecomposeScaleTo: ", dst)
	}
}

func TestIsUniformlyScaled(t *testing.T) {
	for _, s := range []Element{1, 2, 0.5, -3} {
		m := NewMatrix4()
		m.ScaleUniform(s)
		if !m.IsUniformlyScaled() {
			t.Error("uniform scale: ", s)
		}
	}
	if NewScaleMatrix4(1, 2, 3).IsUniformlyScaled() {
		t.Error("(1,2,3) is not uniform")
	}
	if !NewTranslateMatrix4(4, 5, 6).IsUniformlyScaled() {
		t.Error("translation only should be uniform")
	}
}

func TestDecomposeMirrored(t *testing.T) {
	const eps = 0.00001

	rot := NewRotationMatrix4(0.7, NewVector3(1, 2, 3))
	for i, scale := range []*Vector3{
		NewVector3(-2, 3, 4),
		NewVector3(2, -3, 4),
		NewVector3(2, 3, -4),
	} {
		mat := rot.Mul(NewScaleMatrix4V(scale))
		r, s := mat.DecomposeRS()

		if Abs(r.Det()-1) > eps || !isOrthonormal(r, eps) {
			t.Error("rotation should be proper: ", i, r, r.Det())
		}
		if s.X*s.Y*s.Z >= 0 {
			t.Error("mirror should stay in the scale: ", i, s)
		}
		if Abs(Abs(s.X)-Abs(scale.X)) > eps || Abs(Abs(s.Y)-Abs(scale.Y)) > eps || Abs(Abs(s.Z)-Abs(scale.Z)) > eps {
			t.Error("scale magnitude: ", i, s, scale)
		}
		// r * S(s) rebuilds the input
		if !r.Mul(NewScaleMatrix4V(s)).ApproxEqual(mat, eps) {
			t.Error("recompose: ", i, r.Mul(NewScaleMatrix4V(s)), mat)
		}
		if r[3] != [4]Element{0, 0, 0, 1} {
			t.Error("translation column: ", i, r[3])
		}
	}
}

func TestDecomposeChecked(t *testing.T) {
	mat := NewTranslateMatrix4(1, 2, 3).Mul(NewScaleMatrix4(2, 2, 2))
	pos, _, scale, err := mat.DecomposeChecked()
	if err != nil {
		t.Fatal(err)
	}
	if *pos != *NewVector4(1, 2, 3, 1) || *scale != *NewVector3(2, 2, 2) {
		t.Error("DecomposeChecked: ", pos, scale)
	}

	_, _, _, err = NewScaleMatrix4(1, 0, 1).DecomposeChecked()
	var derr *DegenerateError
	if !errors.Is(err, ErrDegenerate) || !errors.As(err, &derr) || derr.Axis != 1 {
		t.Error("zero scale should be rejected: ", err)
	}

	projective := NewMatrix4()
	projective[2][3] = -1
	if _, _, _, err = projective.DecomposeChecked(); !errors.Is(err, ErrProjective) {
		t.Error("projective matrix should be rejected: ", err)
	}
}

func TestRotationMatrixChecked(t *testing.T) {
	if _, err := NewRotationMatrix4Checked(1, &Vector3{}); !errors.Is(err, ErrDegenerate) {
		t.Error("zero axis should be rejected: ", err)
	}
	nan := Element(math.NaN())
	if _, err := NewRotationMatrix4Checked(1, NewVector3(nan, 0, 0)); err == nil {
		t.Error("NaN axis should be rejected")
	}
	m, err := NewRotationMatrix4Checked(1, NewVector3(0, 2, 0))
	if err != nil || *m != *NewRotationMatrix4(1, NewVector3(0, 1, 0)) {
		t.Error("NewRotationMatrix4Checked: ", m, err)
	}
}
