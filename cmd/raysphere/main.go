package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/raysphere/internal/raysphere"
)

func main() {
	raysphere.Debug = os.Getenv("DEBUG") != ""
	raysphere.PNG = os.Getenv("PNG") != ""
	raysphere.RAW = os.Getenv("RAW") != ""
	raysphere.DepthTest = os.Getenv("DEPTH_TEST") != ""
	raysphere.TrueNormals = os.Getenv("TRUE_NORMALS") != ""
	raysphere.CullBehind = os.Getenv("CULL_BEHIND") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := ""
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := raysphere.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
