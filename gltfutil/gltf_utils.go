package gltfutil

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/binzume/affine/geom"
	"github.com/qmuntal/gltf"
)

func Load(path string) (*gltf.Document, error) {
	return gltf.Open(path)
}

// Save writes a .glb (binary) or .gltf file depending on the extension.
func Save(doc *gltf.Document, path string) error {
	if strings.ToLower(filepath.Ext(path)) == ".glb" {
		return gltf.SaveBinary(doc, path)
	}
	return gltf.Save(doc, path)
}

// TransformScaleOffset scales the scene, then moves it by offset.
func TransformScaleOffset(doc *gltf.Document, scale *geom.Vector3, offset *geom.Vector3) error {
	if scale == nil && offset == nil {
		return nil
	}
	mat := geom.NewMatrix4()
	if offset != nil {
		mat = geom.NewTranslateMatrix4V(offset)
	}
	if scale != nil {
		mat.Scale(scale)
	}
	return Transform(doc, mat)
}

// Transform applies an affine matrix to the whole scene: every world matrix
// W becomes mat * W. The matrix is composed into the root nodes, so vertex
// data, skins and child nodes are left as they are. A mirroring matrix is
// fine: glTF reverses the winding of primitives whose world matrix has a
// negative determinant.
//
// A root keeps its TRS form when the result is still expressible with the
// node's own rotation, otherwise it gets a matrix. Roots targeted by an
// animation get a new parent node carrying mat, because animation channels
// overwrite translation, rotation and scale.
func Transform(doc *gltf.Document, mat *geom.Matrix4) error {
	if _, _, _, err := mat.DecomposeChecked(); err != nil {
		return err
	}
	animated := animatedNodes(doc)
	parents := Parents(doc)
	for i := range parents {
		if parents[i] >= 0 {
			continue
		}
		if animated[i] {
			addParent(doc, uint32(i), mat)
			continue
		}
		composeRoot(doc.Nodes[i], mat)
	}
	return nil
}

func composeRoot(node *gltf.Node, mat *geom.Matrix4) {
	if !hasMatrix(node) && composeTRS(node, mat) {
		return
	}
	mat.Mul(NodeMatrix(node)).ToArray(node.Matrix[:])
	node.Translation = [3]float32{}
	node.Rotation = gltf.DefaultRotation
	node.Scale = gltf.DefaultScale
}

// composeTRS rewrites T*R*S as mat*T*R*S when mat's linear part is diagonal
// and commutes with R: either R is the identity or the scale is uniform.
func composeTRS(node *gltf.Node, mat *geom.Matrix4) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if i != j && mat[i][j] != 0 {
				return false
			}
		}
	}
	d := geom.NewVector3(mat[0][0], mat[1][1], mat[2][2])
	q := node.Rotation
	if q != gltf.DefaultRotation && q != [4]float32{} && !d.EqualAll() {
		return false
	}
	s := node.Scale
	if s == [3]float32{} {
		s = gltf.DefaultScale
	}
	mat.ApplyTo(geom.NewVector3FromArray(node.Translation)).ToArray(node.Translation[:])
	node.Scale = [3]float32{d.X * s[0], d.Y * s[1], d.Z * s[2]}
	return true
}

// addParent inserts a node carrying mat above root and puts it in place of
// root in every scene.
func addParent(doc *gltf.Document, root uint32, mat *geom.Matrix4) {
	parent := &gltf.Node{
		Name:     doc.Nodes[root].Name + "_transform",
		Children: []uint32{root},
		Rotation: gltf.DefaultRotation,
		Scale:    gltf.DefaultScale,
	}
	mat.ToArray(parent.Matrix[:])
	log.Printf("node %d is animated, adding parent node %q", root, parent.Name)
	doc.Nodes = append(doc.Nodes, parent)
	index := uint32(len(doc.Nodes) - 1)
	for _, scene := range doc.Scenes {
		for i, n := range scene.Nodes {
			if n == root {
				scene.Nodes[i] = index
			}
		}
	}
}

func animatedNodes(doc *gltf.Document) map[int]bool {
	animated := map[int]bool{}
	for _, a := range doc.Animations {
		for _, c := range a.Channels {
			if c.Target.Node != nil {
				animated[int(*c.Target.Node)] = true
			}
		}
	}
	return animated
}
