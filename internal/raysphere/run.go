package raysphere

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Run renders the scene from cfgPath (the built-in scene when empty) and writes
// the image to the configured output.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return err
	}

	r := NewRenderer(cfg, scene)
	if Debug {
		r.Stats = &RenderStats{}
	}

	start := time.Now()
	buf := r.Render()
	DebugLog("Pixels: %d, time: %s", cfg.Width*cfg.Height, time.Since(start))

	if Debug {
		r.Stats.print()
	}

	if RAW {
		if err := SaveRawPPM(cfg.Output, buf); err != nil {
			return err
		}
		fmt.Printf("[PPM] saved %s (P6)\n", cfg.Output)
	} else {
		if err := SavePPM(cfg.Output, buf); err != nil {
			return err
		}
		fmt.Printf("[PPM] saved %s\n", cfg.Output)
	}

	if PNG {
		out := strings.TrimSuffix(cfg.Output, filepath.Ext(cfg.Output)) + ".png"
		if err := SavePNG(out, buf); err != nil {
			return err
		}
		fmt.Printf("[PNG] saved %s\n", out)
	}
	return nil
}
