package gltfutil

import (
	"github.com/binzume/affine/geom"
	"github.com/qmuntal/gltf"
)

// NodeInfo is the decomposed world transform of a node.
type NodeInfo struct {
	Index       int
	Name        string
	Parent      int // -1 for roots
	World       *geom.Matrix4
	Translation *geom.Vector4
	Rotation    *geom.Matrix4
	Scale       *geom.Vector3
	Uniform     bool
	Mirrored    bool
	Err         error
}

// NodeMatrix returns the local transform of a node: its matrix when set,
// otherwise T * R * S.
func NodeMatrix(node *gltf.Node) *geom.Matrix4 {
	if hasMatrix(node) {
		return geom.NewMatrix4FromArray(node.Matrix)
	}
	q := node.Rotation
	if q == [4]float32{} {
		q = [4]float32{0, 0, 0, 1}
	}
	s := node.Scale
	if s == [3]float32{} {
		s = [3]float32{1, 1, 1}
	}
	m := geom.NewTranslateMatrix4V(geom.NewVector3FromArray(node.Translation))
	m = m.Mul(geom.NewRotationMatrix4FromQuaternion(q[0], q[1], q[2], q[3]))
	return m.Scale(geom.NewVector3FromArray(s))
}

// hasMatrix reports whether the node carries an explicit non-identity matrix.
func hasMatrix(node *gltf.Node) bool {
	return node.Matrix != gltf.DefaultMatrix && node.Matrix != [16]float32{}
}

// Parents returns the parent index of every node, -1 for roots.
func Parents(doc *gltf.Document) []int {
	parents := make([]int, len(doc.Nodes))
	for i := range parents {
		parents[i] = -1
	}
	for i, n := range doc.Nodes {
		for _, c := range n.Children {
			if int(c) < len(parents) {
				parents[c] = i
			}
		}
	}
	return parents
}

// WorldMatrices computes parent * local for every node.
func WorldMatrices(doc *gltf.Document) []*geom.Matrix4 {
	parents := Parents(doc)
	world := make([]*geom.Matrix4, len(doc.Nodes))
	var resolve func(i int, depth int) *geom.Matrix4
	resolve = func(i int, depth int) *geom.Matrix4 {
		if world[i] != nil {
			return world[i]
		}
		local := NodeMatrix(doc.Nodes[i])
		// depth guards against cyclic children lists
		if p := parents[i]; p >= 0 && depth < len(doc.Nodes) {
			local = resolve(p, depth+1).Mul(local)
		}
		world[i] = local
		return local
	}
	for i := range doc.Nodes {
		resolve(i, 0)
	}
	return world
}

// InspectNodes decomposes the world matrix of every node.
func InspectNodes(doc *gltf.Document) []*NodeInfo {
	parents := Parents(doc)
	var infos []*NodeInfo
	for i, world := range WorldMatrices(doc) {
		info := &NodeInfo{
			Index:  i,
			Name:   doc.Nodes[i].Name,
			Parent: parents[i],
			World:  world,
		}
		info.Translation, info.Rotation, info.Scale, info.Err = world.DecomposeChecked()
		if info.Err == nil {
			info.Uniform = world.IsUniformlyScaled()
			info.Mirrored = info.Scale.X < 0 || info.Scale.Y < 0 || info.Scale.Z < 0
		}
		infos = append(infos, info)
	}
	return infos
}
