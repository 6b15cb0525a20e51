package raysphere

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

type SphereCfg struct {
	Center Vector3 `json:"center"`
	Radius Real    `json:"radius"`
}

// Config is the full, immutable description of one render.
type Config struct {
	Width   int         `json:"width"`
	Height  int         `json:"height"`
	FOVDeg  Real        `json:"fovDeg"` // horizontal field of view in degrees
	Spheres []SphereCfg `json:"spheres"`
	Light   Vector3     `json:"light"`   // point light position
	Diffuse Vector3     `json:"diffuse"` // base color, 0..255 per channel
	Output  string      `json:"output,omitempty"`

	// Physically correct variants, all off by default.
	DepthTest   bool `json:"depthTest,omitempty"`   // keep the nearest hit in front of the camera instead of the last drawn
	TrueNormals bool `json:"trueNormals,omitempty"` // shade with the surface normal instead of the hit position
	CullBehind  bool `json:"cullBehind,omitempty"`  // ignore intersections behind the camera
}

// DefaultConfig returns the built-in two-sphere scene.
// Sphere order is draw order: the second sphere wins wherever both are hit.
func DefaultConfig() *Config {
	return &Config{
		Width:  ImageWidth,
		Height: ImageHeight,
		FOVDeg: FOVDeg,
		Spheres: []SphereCfg{
			{Center: Vector3{-1, 1, -3}, Radius: 3},
			{Center: Vector3{0, 2, -5}, Radius: 2},
		},
		Light:   Vector3{3, 3, -4.5},
		Diffuse: Vector3{100, 150, 100},
		Output:  PPMOut,
	}
}

// FOV returns the horizontal field of view in radians.
func (c *Config) FOV() Real { return c.FOVDeg * math.Pi / 180 }

// Build validates and constructs the runtime object.
func (sc SphereCfg) Build() (*Sphere, error) {
	return NewSphere(sc.Center, sc.Radius)
}

func (c *Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if !(c.FOVDeg > 0 && c.FOVDeg < 180) {
		return fmt.Errorf("fovDeg must be in (0, 180), got %g", c.FOVDeg)
	}
	for _, v := range []Vector3{c.Light, c.Diffuse} {
		if !isFinite(v.X) || !isFinite(v.Y) || !isFinite(v.Z) {
			return fmt.Errorf("light and diffuse must be finite, got %+v", v)
		}
	}
	if c.Diffuse.X < 0 || c.Diffuse.Y < 0 || c.Diffuse.Z < 0 ||
		c.Diffuse.X > MaxChannel || c.Diffuse.Y > MaxChannel || c.Diffuse.Z > MaxChannel {
		return fmt.Errorf("diffuse channels must be in [0, %d], got %+v", MaxChannel, c.Diffuse)
	}
	return nil
}

// Scene builds the ordered scene described by the config.
func (c *Config) Scene() (*Scene, error) {
	scene := NewScene()
	for i, sc := range c.Spheres {
		s, err := sc.Build()
		if err != nil {
			return nil, fmt.Errorf("sphere #%d: %w", i, err)
		}
		scene.Add(s)
	}
	return scene, nil
}

// loadConfig overlays a JSON file on top of DefaultConfig.
func loadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	// Decoding into a non-empty slice would merge into the default spheres.
	defSpheres := cfg.Spheres
	cfg.Spheres = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Spheres == nil {
		cfg.Spheres = defSpheres
	}
	if cfg.Output == "" {
		cfg.Output = PPMOut
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), fov=%.2f, spheres=%d", path, cfg.Width, cfg.Height, cfg.FOVDeg, len(cfg.Spheres))
	return cfg, nil
}
