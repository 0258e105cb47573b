package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/adammck/quadruped"
	"github.com/adammck/quadruped/config"
	"github.com/adammck/quadruped/legs"
	"github.com/adammck/quadruped/output"
	"github.com/adammck/quadruped/render"
	"github.com/adammck/quadruped/utils"
)

const (
	flagDebug   = "debug"
	flagConfig  = "config"
	flagOut     = "out"
	flagTopPNG  = "top-png"
	flagSidePNG = "side-png"
	flagOmega   = "omega"
	flagPhi     = "phi"
	flagPsi     = "psi"
	flagDegrees = "degrees"
	flagQuiet   = "quiet"
	flagX       = "x"
	flagY       = "y"
	flagZ       = "z"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "main",
})

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "quadik",
		Usage: "solve quadruped body and leg kinematics",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "show every intermediate vector",
			},
		},
		Before: func(c *cli.Context) error {
			utils.ConfigureLogging(os.Stderr, c.Bool(flagDebug))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "solve",
				Usage: "solve a body pose and four foot positions, and write robot.dat",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagConfig,
						Aliases: []string{"c"},
						Usage:   "robot config (YAML); the demo robot if empty",
					},
					&cli.StringFlag{
						Name:    flagOut,
						Aliases: []string{"o"},
						Value:   "robot.dat",
						Usage:   "where to write the tab-separated joint positions",
					},
					&cli.StringFlag{
						Name:  flagTopPNG,
						Usage: "also plot the top view to this file",
					},
					&cli.StringFlag{
						Name:  flagSidePNG,
						Usage: "also plot the side view to this file",
					},
					&cli.Float64Flag{
						Name:  flagOmega,
						Usage: "override the body roll",
					},
					&cli.Float64Flag{
						Name:  flagPhi,
						Usage: "override the body pitch",
					},
					&cli.Float64Flag{
						Name:  flagPsi,
						Usage: "override the body yaw",
					},
					&cli.BoolFlag{
						Name:  flagDegrees,
						Usage: "pose angles are in degrees",
					},
					&cli.BoolFlag{
						Name:    flagQuiet,
						Aliases: []string{"q"},
						Usage:   "don't print the joint angle table",
					},
				},
				Action: solveAction,
			},
			{
				Name:  "leg",
				Usage: "solve a single leg for a foot position in its own space",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    flagConfig,
						Aliases: []string{"c"},
						Usage:   "robot config (YAML), for the link lengths",
					},
					&cli.Float64Flag{Name: flagX, Value: -55},
					&cli.Float64Flag{Name: flagY, Value: -100},
					&cli.Float64Flag{Name: flagZ, Value: 20},
				},
				Action: legAction,
			},
		},
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String(flagConfig)
	if path == "" {
		return config.Default(), nil
	}

	log.Infof("loading config from %s", path)
	return config.Load(path)
}

func solveAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// Switch units before applying overrides, which are given in the new unit.
	if c.IsSet(flagDegrees) {
		cfg.SetDegrees(c.Bool(flagDegrees))
	}

	if c.IsSet(flagOmega) || c.IsSet(flagPhi) || c.IsSet(flagPsi) {
		o, p, s := cfg.Pose.Omega, cfg.Pose.Phi, cfg.Pose.Psi
		if c.IsSet(flagOmega) {
			o = c.Float64(flagOmega)
		}
		if c.IsSet(flagPhi) {
			p = c.Float64(flagPhi)
		}
		if c.IsSet(flagPsi) {
			s = c.Float64(flagPsi)
		}
		cfg.SetOrientation(o, p, s)
	}

	q, err := quadruped.New(cfg.LinkLengths(), cfg.Dimensions())
	if err != nil {
		return err
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM, so a solve can be abandoned.
	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pose := cfg.BodyPose()
	omega, phi, psi := cfg.OrientationDegrees()
	log.Infof("solving %s (omega=%+.2f° phi=%+.2f° psi=%+.2f°)", pose, omega, phi, psi)

	sol, err := q.Solve(ctx, pose, cfg.FootTargets())
	if err != nil {
		return err
	}

	// Unreachable legs are still written, as NaN, like they always were.
	if err := sol.Err(); err != nil {
		log.Warnf("some feet are out of reach: %s", err)
	}

	if err := output.SaveDat(c.String(flagOut), sol); err != nil {
		return err
	}
	log.Infof("wrote %s", c.String(flagOut))

	if path := c.String(flagTopPNG); path != "" {
		if err := render.SavePNG(path, sol, render.Top); err != nil {
			return err
		}
	}

	if path := c.String(flagSidePNG); path != "" {
		if err := render.SavePNG(path, sol, render.Side); err != nil {
			return err
		}
	}

	if !c.Bool(flagQuiet) {
		output.WriteTable(c.App.Writer, sol)
	}

	return nil
}

func legAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	links := cfg.LinkLengths()
	ja := legs.IK(c.Float64(flagX), c.Float64(flagY), c.Float64(flagZ), links)
	if !ja.Finite() {
		log.Warnf("target is out of reach: %s", ja)
	}

	fmt.Fprintln(c.App.Writer, ja)
	for _, p := range legs.Points(ja, links) {
		fmt.Fprintf(c.App.Writer, "%v\t%v\t%v\t%v\n", p[0], p[1], p[2], p[3])
	}

	return nil
}
