package pipeline

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/binzume/affine/geom"
	"github.com/go-gl/mathgl/mgl32"
)

const testRecipe = `
name: y-up
steps:
  - translate: [1, 2, 3]
  - rotate: {angle: 90, axis: [0, 1, 0], degrees: true}
  - scale: [2, 3, 4]
`

func TestRecipeMatrix(t *testing.T) {
	const eps = 0.00001

	r, err := Parse([]byte(testRecipe))
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "y-up" || len(r.Steps) != 3 {
		t.Fatal("parse: ", r)
	}

	m, err := r.Matrix()
	if err != nil {
		t.Fatal(err)
	}

	want := mgl32.Translate3D(1, 2, 3).
		Mul4(mgl32.HomogRotate3D(math.Pi/2, mgl32.Vec3{0, 1, 0})).
		Mul4(mgl32.Scale3D(2, 3, 4))
	if !m.ApproxEqual(geom.NewMatrix4FromSlice(want[:]), eps) {
		t.Error("recipe matrix: ", m, want)
	}

	pos, _, scale := m.Decompose()
	if *pos != *geom.NewVector4(1, 2, 3, 1) {
		t.Error("translation: ", pos)
	}
	if scale.Sub(geom.NewVector3(2, 3, 4)).Len() > eps {
		t.Error("scale: ", scale)
	}
}

func TestRecipePivotAndSpin(t *testing.T) {
	const eps = 0.00001

	r, err := Parse([]byte(`
steps:
  - translate: [5, 0, 0]
  - spin: {angle: 3.14159265, axis: [0, 0, 1]}
  - rotate_at: {pivot: [1, 0, 0], angle: 90, axis: [0, 0, 1], degrees: true}
  - scale_uniform: 2
`))
	if err != nil {
		t.Fatal(err)
	}
	m, err := r.Matrix()
	if err != nil {
		t.Fatal(err)
	}

	want := geom.NewTranslateMatrix4(5, 0, 0)
	want.Spin(3.14159265, geom.NewVector3(0, 0, 1))
	want.RotateAt(geom.NewVector3(1, 0, 0), math.Pi/2, geom.NewVector3(0, 0, 1))
	want.ScaleUniform(2)
	if !m.ApproxEqual(want, eps) {
		t.Error("recipe matrix: ", m, want)
	}
	if m.DecomposeScale().Sub(geom.NewVector3(2, 2, 2)).Len() > eps {
		t.Error("scale: ", m.DecomposeScale())
	}
}

func TestRecipeErrors(t *testing.T) {
	for i, src := range []string{
		"steps:\n  - {}\n",
		"steps:\n  - {translate: [1, 0, 0], scale: [1, 1, 1]}\n",
		"steps:\n  - rotate: {angle: 1, axis: [0, 0, 0]}\n",
		"steps:\n  - rotate_at: {angle: 1, axis: [0, 1, 0]}\n",
		"steps:\n  - spin: {angle: 1}\n",
	} {
		r, err := Parse([]byte(src))
		if err != nil {
			t.Error("parse: ", i, err)
			continue
		}
		if _, err := r.Matrix(); err == nil {
			t.Error("expected error: ", i)
		} else if !errors.Is(err, ErrInvalidStep) && !errors.Is(err, geom.ErrDegenerate) {
			t.Error("unexpected error: ", i, err)
		}
	}

	if _, err := Parse([]byte("steps:\n  - shear: [1, 2, 3]\n")); err == nil {
		t.Error("unknown operation should fail to parse")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recipe.yaml")
	if err := os.WriteFile(path, []byte(testRecipe), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	data, err := r.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}
	m1, _ := r.Matrix()
	m2, _ := r2.Matrix()
	if *m1 != *m2 {
		t.Error("marshalled recipe differs: ", string(data))
	}
}
