// Package effects paints the decorative background layers and applies the
// pointer-driven cursor and parallax transforms.
package effects

// Palette holds the colours used by the background effects.
var Palette = struct {
	// Starfield colours by depth layer
	StarNear string
	StarMid  string
	StarFar  string
	StarGlow string

	// Particle colours
	ParticleRGB  string // rgba prefix components, alpha appended per particle
	ParticleGlow string

	// Glow blur
	StarBlurPerDepth float64
	ParticleBlur     float64
}{
	StarNear: "#fff",
	StarMid:  "#ffd700",
	StarFar:  "#6c3fd1",
	StarGlow: "#fff",

	ParticleRGB:  "108,63,209",
	ParticleGlow: "#ffd700",

	StarBlurPerDepth: 8,
	ParticleBlur:     8,
}
