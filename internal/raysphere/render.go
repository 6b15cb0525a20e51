package raysphere

import (
	"fmt"
	"math"
)

// Renderer turns a Scene into a PixelBuffer, one independent primary ray per pixel.
type Renderer struct {
	Scene   *Scene
	Camera  Camera
	Light   Vector3
	Diffuse Vector3

	DepthTest   bool
	TrueNormals bool
	CullBehind  bool

	Stats *RenderStats // optional
}

func NewRenderer(cfg *Config, scene *Scene) *Renderer {
	return &Renderer{
		Scene:       scene,
		Camera:      NewCamera(cfg.Width, cfg.Height, cfg.FOV()),
		Light:       cfg.Light,
		Diffuse:     cfg.Diffuse,
		DepthTest:   cfg.DepthTest || DepthTest,
		TrueNormals: cfg.TrueNormals || TrueNormals,
		CullBehind:  cfg.CullBehind || CullBehind,
	}
}

// intensity is the diffuse term at p: the cosine between the direction to the light
// and ref, clamped at 0. Unless TrueNormals is set, ref is the hit position itself.
func intensity(light, p, ref Vector3) Real {
	L := light.Sub(p).Norm()
	i := L.Norm().Dot(ref.Norm())
	if i <= 0 {
		i = 0
	}
	return i
}

func (r *Renderer) shade(o Intersectable, p Vector3) RGB8 {
	ref := p
	if r.TrueNormals {
		ref = o.Normal(p)
	}
	k := intensity(r.Light, p, ref)
	return RGB8{
		R: toChannel(r.Diffuse.X * k),
		G: toChannel(r.Diffuse.Y * k),
		B: toChannel(r.Diffuse.Z * k),
	}
}

// tracePixel tests every object in scene order. Without a depth test each hit
// overwrites the previous one, so the last object hit wins regardless of distance.
func (r *Renderer) tracePixel(D Vector3) (RGB8, bool) {
	O := r.Camera.Origin
	var (
		color RGB8
		bestT = math.Inf(1)
		okAny bool
	)
	for _, o := range r.Scene.Objects {
		hit, ok := o.Intersect(O, D)
		if !ok {
			r.Stats.log(Missed)
			continue
		}
		// Depth ordering only makes sense in front of the camera.
		if (r.CullBehind || r.DepthTest) && hit.T < 0 {
			r.Stats.log(Culled)
			continue
		}
		dist := hit.T
		if r.DepthTest && okAny && dist >= bestT {
			r.Stats.log(Occluded)
			continue
		}
		if okAny {
			r.Stats.log(Overwritten)
		}
		color, bestT, okAny = r.shade(o, hit.Point), dist, true
		r.Stats.log(Shaded)
	}
	return color, okAny
}

// Render fills a fresh buffer. Pixels without a hit stay black.
func (r *Renderer) Render() *PixelBuffer {
	W, H := r.Camera.Width, r.Camera.Height
	buf := NewPixelBuffer(W, H)
	DebugLogOnce("Corrections: depthTest=%v trueNormals=%v cullBehind=%v", r.DepthTest, r.TrueNormals, r.CullBehind)

	// Progress print step (~10%).
	step := 1
	if H >= 10 {
		step = H / 10
	}
	for j := 0; j < H; j++ {
		if Debug && j%step == 0 {
			fmt.Printf("[RENDER] %.2f%%\n", Real(j+1)*100/Real(H))
		}
		for i := 0; i < W; i++ {
			if c, ok := r.tracePixel(r.Camera.PrimaryRay(i, j)); ok {
				buf.Set(j, i, c)
			} else {
				r.Stats.log(Background)
			}
		}
	}
	DebugLog("Rendered %dx%d, %d objects", W, H, len(r.Scene.Objects))
	return buf
}

// Render builds the scene described by cfg and renders it.
func Render(cfg *Config) (*PixelBuffer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	scene, err := cfg.Scene()
	if err != nil {
		return nil, err
	}
	return NewRenderer(cfg, scene).Render(), nil
}
