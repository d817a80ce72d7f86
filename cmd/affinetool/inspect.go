package main

import (
	"fmt"
	"io"
	"log"

	"github.com/binzume/affine/gltfutil"
)

func inspect(input string, w io.Writer) error {
	doc, err := gltfutil.Load(input)
	if err != nil {
		return err
	}
	log.Print("nodes: ", len(doc.Nodes))

	for _, n := range gltfutil.InspectNodes(doc) {
		fmt.Fprintf(w, "#%d %q parent=%d\n", n.Index, n.Name, n.Parent)
		if n.Err != nil {
			fmt.Fprintf(w, "  error: %v\n", n.Err)
			continue
		}
		fmt.Fprintf(w, "  translation: %v %v %v\n", n.Translation.X, n.Translation.Y, n.Translation.Z)
		fmt.Fprintf(w, "  scale: %v %v %v uniform=%v mirrored=%v\n", n.Scale.X, n.Scale.Y, n.Scale.Z, n.Uniform, n.Mirrored)
		for i := 0; i < 3; i++ {
			c := n.Rotation.Column3(i)
			fmt.Fprintf(w, "  rotation[%d]: %v %v %v\n", i, c.X, c.Y, c.Z)
		}
	}
	return nil
}
