package spincube

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

//go:embed shaders/cube.vert
var cubeVertexShader string

//go:embed shaders/cube.frag
var cubeFragmentShader string

// Default window and camera constants.
const (
	DefaultTitle        = "Spinning Cube"
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultFovY         = 45
	DefaultNear         = 0.1
	DefaultFar          = 100
	DefaultRotationRate = 50 // degrees per second

	// Shader files read from the working directory by the triangle configuration.
	TriangleVertexShaderFile   = "SimpleVertexShader.vert"
	TriangleFragmentShaderFile = "SimpleFragmentShader.frag"
)

// ShaderSource is either embedded text or a path to a text file.
// Text wins when both are set.
type ShaderSource struct {
	Text string
	Path string
}

// Load returns the shader text, reading Path if no Text is embedded.
func (s ShaderSource) Load() (string, error) {
	if s.Text != "" {
		return s.Text, nil
	}
	if s.Path == "" {
		return "", errors.New("shader source has neither text nor path")
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return "", fmt.Errorf("read shader %s: %w", s.Path, err)
	}
	return string(data), nil
}

// Config fully determines a run. It is built from compiled-in presets.
type Config struct {
	Title  string
	Width  int
	Height int

	GLMajor int
	GLMinor int

	ClearColor [4]float32
	DepthTest  bool

	RotationRate float32 // degrees per second
	Camera       Camera
	Mesh         Mesh

	VertexShader   ShaderSource
	FragmentShader ShaderSource
}

// Option configures a Config.
type Option func(*Config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithSize sets the window size and matches the camera aspect to it.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width, c.Height = width, height
		if height > 0 {
			c.Camera.Aspect = float32(width) / float32(height)
		}
	}
}

// WithDepthTest enables or disables depth testing and depth clears.
func WithDepthTest(enabled bool) Option {
	return func(c *Config) { c.DepthTest = enabled }
}

// WithRotationRate sets the angular rate in degrees per second.
func WithRotationRate(rate float32) Option {
	return func(c *Config) { c.RotationRate = rate }
}

// WithCamera replaces the camera.
func WithCamera(cam Camera) Option {
	return func(c *Config) { c.Camera = cam }
}

// WithClearColor sets the background colour.
func WithClearColor(r, g, b, a float32) Option {
	return func(c *Config) { c.ClearColor = [4]float32{r, g, b, a} }
}

// WithMesh replaces the mesh drawn every frame.
func WithMesh(m Mesh) Option {
	return func(c *Config) { c.Mesh = m }
}

// WithShaders replaces both shader sources.
func WithShaders(vertex, fragment ShaderSource) Option {
	return func(c *Config) {
		c.VertexShader = vertex
		c.FragmentShader = fragment
	}
}

func baseConfig() Config {
	return Config{
		Title:        DefaultTitle,
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		GLMajor:      3,
		GLMinor:      3,
		ClearColor:   [4]float32{0, 0, 0.4, 0},
		RotationRate: DefaultRotationRate,
		Camera: Camera{
			FovY:   DefaultFovY,
			Aspect: float32(DefaultWidth) / float32(DefaultHeight),
			Near:   DefaultNear,
			Far:    DefaultFar,
		},
	}
}

func applyOptions(c Config, opts []Option) Config {
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// CubeConfig returns the depth-tested spinning cube with embedded shaders.
func CubeConfig(opts ...Option) Config {
	c := baseConfig()
	c.DepthTest = true
	c.Camera.Distance = 5
	c.Mesh = CubeMesh()
	c.VertexShader = ShaderSource{Text: cubeVertexShader}
	c.FragmentShader = ShaderSource{Text: cubeFragmentShader}
	return applyOptions(c, opts)
}

// TriangleConfig returns the colour-only triangle whose shaders are read
// from the working directory. The triangle shaders take no transform
// uniforms, so the triangle is static: the rotation rate is zero and the
// camera is left at the origin.
func TriangleConfig(opts ...Option) Config {
	c := baseConfig()
	c.RotationRate = 0
	c.Mesh = TriangleMesh()
	c.VertexShader = ShaderSource{Path: TriangleVertexShaderFile}
	c.FragmentShader = ShaderSource{Path: TriangleFragmentShaderFile}
	return applyOptions(c, opts)
}

// Validate reports the first problem that would make the run fail.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 2) {
		return fmt.Errorf("%w: GL %d.%d has no core profile", ErrInvalidConfig, c.GLMajor, c.GLMinor)
	}
	cam := c.Camera
	if cam.FovY <= 0 || cam.FovY >= 180 {
		return fmt.Errorf("%w: field of view %v", ErrInvalidConfig, cam.FovY)
	}
	if cam.Aspect <= 0 {
		return fmt.Errorf("%w: aspect %v", ErrInvalidConfig, cam.Aspect)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalidConfig, cam.Near, cam.Far)
	}
	if err := c.Mesh.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

