package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/adammck/quadruped/body"
	"github.com/adammck/quadruped/legs"
	"github.com/adammck/quadruped/math3d"
	"github.com/adammck/quadruped/utils"
)

// Links are the leg segment lengths, in mm.
type Links struct {
	L1 float64 `yaml:"l1"`
	L2 float64 `yaml:"l2"`
	L3 float64 `yaml:"l3"`
	L4 float64 `yaml:"l4"`
}

// Body is the distance between the hips, in mm.
type Body struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
}

// Pose is the orientation (omega, phi, psi) and position of the body.
type Pose struct {
	Omega float64 `yaml:"omega"`
	Phi   float64 `yaml:"phi"`
	Psi   float64 `yaml:"psi"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
}

// Feet are the desired foot positions in the world space, as [x, y, z].
type Feet struct {
	FrontLeft  [3]float64 `yaml:"front_left"`
	FrontRight [3]float64 `yaml:"front_right"`
	BackLeft   [3]float64 `yaml:"back_left"`
	BackRight  [3]float64 `yaml:"back_right"`
}

// Config describes a robot and the single pose to solve it for.
type Config struct {
	Links Links `yaml:"links"`
	Body  Body  `yaml:"body"`
	Pose  Pose  `yaml:"pose"`
	Feet  Feet  `yaml:"feet"`

	// If true, the pose angles are in degrees rather than radians.
	Degrees bool `yaml:"degrees"`
}

// Default returns the configuration of the demo robot.
func Default() *Config {
	return &Config{
		Links: Links{L1: 25, L2: 20, L3: 80, L4: 80},
		Body:  Body{Length: 120, Width: 90},
		Pose:  Pose{Omega: 0.3, Phi: 0.1, Psi: -0.4},
		Feet: Feet{
			FrontLeft:  [3]float64{100, -100, 100},
			FrontRight: [3]float64{100, -100, -100},
			BackLeft:   [3]float64{-100, -100, 100},
			BackRight:  [3]float64{-100, -100, -100},
		},
	}
}

// Load reads a YAML config file. Anything missing from the file keeps its
// default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	return Parse(data)
}

// Parse parses and validates a YAML config. The unit is read first, so that
// any default pose angle left out of the file is converted to it.
func Parse(data []byte) (*Config, error) {
	var unit struct {
		Degrees bool `yaml:"degrees"`
	}
	if err := yaml.Unmarshal(data, &unit); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	cfg := Default()
	cfg.SetDegrees(unit.Degrees)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the geometry makes sense. The pose and feet can be
// anything; unreachable feet are reported when solving.
func (c *Config) Validate() error {
	if err := c.LinkLengths().Validate(); err != nil {
		return errors.Wrap(err, "invalid links")
	}

	if !(c.Body.Length > 0) || !(c.Body.Width > 0) {
		return errors.Errorf("invalid body: length and width must be positive, got %vx%v", c.Body.Length, c.Body.Width)
	}

	return nil
}

// LinkLengths returns the configured leg geometry.
func (c *Config) LinkLengths() legs.LinkLengths {
	return legs.LinkLengths{L1: c.Links.L1, L2: c.Links.L2, L3: c.Links.L3, L4: c.Links.L4}
}

// Dimensions returns the configured body geometry.
func (c *Config) Dimensions() body.Dimensions {
	return body.Dimensions{Length: c.Body.Length, Width: c.Body.Width}
}

// BodyPose returns the configured pose, with the angles in radians.
func (c *Config) BodyPose() body.Pose {
	ea := math3d.EulerAngles{Roll: c.Pose.Omega, Pitch: c.Pose.Phi, Yaw: c.Pose.Psi}
	if c.Degrees {
		ea = math3d.EulerDegrees(c.Pose.Omega, c.Pose.Phi, c.Pose.Psi)
	}

	return body.Pose{
		Orientation: ea,
		Position:    math3d.Vector3{X: c.Pose.X, Y: c.Pose.Y, Z: c.Pose.Z},
	}
}

// SetDegrees changes the unit of the pose angles, converting the stored
// angles so that the pose itself doesn't change.
func (c *Config) SetDegrees(degrees bool) {
	if degrees == c.Degrees {
		return
	}

	conv := utils.Rad
	if degrees {
		conv = utils.Deg
	}

	c.Pose.Omega, c.Pose.Phi, c.Pose.Psi = conv(c.Pose.Omega), conv(c.Pose.Phi), conv(c.Pose.Psi)
	c.Degrees = degrees
}

// SetOrientation overrides the pose angles, given in the config's units.
func (c *Config) SetOrientation(omega, phi, psi float64) {
	c.Pose.Omega = omega
	c.Pose.Phi = phi
	c.Pose.Psi = psi
}

// OrientationDegrees returns the pose angles in degrees, whatever unit the
// config uses.
func (c *Config) OrientationDegrees() (float64, float64, float64) {
	if c.Degrees {
		return c.Pose.Omega, c.Pose.Phi, c.Pose.Psi
	}

	return utils.Deg(c.Pose.Omega), utils.Deg(c.Pose.Phi), utils.Deg(c.Pose.Psi)
}

// FootTargets returns the desired world position of each foot, indexed by leg.
func (c *Config) FootTargets() [body.NumLegs]math3d.Vector3 {
	v := func(a [3]float64) math3d.Vector3 {
		return math3d.Vector3{X: a[0], Y: a[1], Z: a[2]}
	}

	return [body.NumLegs]math3d.Vector3{
		body.FrontLeft:  v(c.Feet.FrontLeft),
		body.FrontRight: v(c.Feet.FrontRight),
		body.BackLeft:   v(c.Feet.BackLeft),
		body.BackRight:  v(c.Feet.BackRight),
	}
}
