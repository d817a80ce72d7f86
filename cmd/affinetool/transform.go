package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/binzume/affine/geom"
	"github.com/binzume/affine/gltfutil"
	"github.com/binzume/affine/pipeline"
)

type transformOptions struct {
	recipe string
	scale  string
	offset string
	rotate float64
	axis   string
}

// matrix builds T(offset) * R(rotate, axis) * S(scale), or the recipe matrix.
func (o *transformOptions) matrix() (*geom.Matrix4, error) {
	if o.recipe != "" {
		r, err := pipeline.Load(o.recipe)
		if err != nil {
			return nil, err
		}
		return r.Matrix()
	}

	mat := geom.NewMatrix4()
	offset, err := parseVector3(o.offset)
	if err != nil {
		return nil, fmt.Errorf("offset: %w", err)
	}
	if offset != nil {
		mat.Translate(offset)
	}
	if o.rotate != 0 {
		axis, err := parseVector3(o.axis)
		if err != nil {
			return nil, fmt.Errorf("axis: %w", err)
		}
		if axis == nil {
			axis = geom.NewVector3(0, 1, 0)
		}
		rot, err := geom.NewRotationMatrix4Checked(geom.Element(o.rotate*math.Pi/180), axis)
		if err != nil {
			return nil, err
		}
		geom.MulRotTo(mat, rot, mat)
	}
	scale, err := parseVector3(o.scale)
	if err != nil {
		return nil, fmt.Errorf("scale: %w", err)
	}
	if scale != nil {
		mat.Scale(scale)
	}
	return mat, nil
}

func transformCommand(args []string) error {
	var opt transformOptions
	fs := flag.NewFlagSet("transform", flag.ExitOnError)
	fs.StringVar(&opt.recipe, "recipe", "", "transform recipe (.yaml)")
	fs.StringVar(&opt.scale, "scale", "", "scale: s or x,y,z")
	fs.StringVar(&opt.offset, "offset", "", "offset: x,y,z")
	fs.Float64Var(&opt.rotate, "rotate", 0, "rotation angle in degrees")
	fs.StringVar(&opt.axis, "axis", "0,1,0", "rotation axis: x,y,z")
	fs.Parse(args)

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("no input file")
	}
	input := fs.Arg(0)
	output := fs.Arg(1)
	if output == "" {
		output = defaultOutputFile(input)
	}

	mat, err := opt.matrix()
	if err != nil {
		return err
	}

	doc, err := gltfutil.Load(input)
	if err != nil {
		return err
	}
	if err := gltfutil.Transform(doc, mat); err != nil {
		return err
	}
	log.Print("out: ", output)
	return gltfutil.Save(doc, output)
}
