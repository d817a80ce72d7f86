package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/binzume/affine/geom"
)

func defaultOutputFile(input string) string {
	ext := filepath.Ext(input)
	base := input[0 : len(input)-len(ext)]
	if strings.ToLower(ext) == ".gltf" {
		return base + ".transformed.gltf"
	}
	return base + ".transformed.glb"
}

func parseVector3(s string) (*geom.Vector3, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) == 1 {
		parts = []string{parts[0], parts[0], parts[0]}
	}
	if len(parts) != 3 {
		return nil, fmt.Errorf("expected x,y,z: %q", s)
	}
	var v [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, err
		}
		v[i] = float32(f)
	}
	return geom.NewVector3FromArray(v), nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  %s inspect input.glb\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s transform [options] input.glb [output.glb]\n", os.Args[0])
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 2 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch flag.Arg(0) {
	case "inspect":
		err = inspect(flag.Arg(1), os.Stdout)
	case "transform":
		err = transformCommand(flag.Args()[1:])
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}
