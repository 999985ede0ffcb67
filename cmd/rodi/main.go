package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/gwillem/rodi/pkg/robot"
)

type Options struct {
	Config  string        `long:"config" default:"rodi.json" description:"Configuration file written by setup"`
	Host    string        `long:"host" description:"Robot address (overrides config and RODI_HOST)"`
	Port    int           `long:"port" description:"Robot port (overrides config and RODI_PORT)"`
	Timeout time.Duration `long:"timeout" description:"Request timeout (default 1s)"`

	Setup  SetupCommand  `command:"setup" description:"Configure the robot's address"`
	Info   InfoCommand   `command:"info" description:"Read every sensor once"`
	Demo   DemoCommand   `command:"demo" alias:"test" description:"Exercise every robot capability in turn"`
	Avoid  AvoidCommand  `command:"avoid" alias:"see" description:"Print the distance sensor until interrupted"`
	Follow FollowCommand `command:"follow" alias:"sense" description:"Run the line follower until interrupted"`
	Sim    SimCommand    `command:"sim" description:"Serve a simulated robot"`
}

var opts Options
var parser = flags.NewParser(&opts, flags.Default)

func main() {
	parser.LongDescription = "RoDI - control the RoDI wireless robot over its HTTP API"

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
		}
		os.Exit(1)
	}
}

// robotConfig resolves the robot address: defaults, then the config file,
// then the environment, then flags.
func robotConfig() (robot.Config, error) {
	cfg := robot.DefaultConfig()

	fileCfg, err := robot.LoadConfigFrom(opts.Config)
	switch {
	case err == nil:
		cfg = fileCfg.WithDefaults()
	case !errors.Is(err, os.ErrNotExist):
		return cfg, err
	}

	cfg, err = cfg.ApplyEnv()
	if err != nil {
		return cfg, err
	}

	if opts.Host != "" {
		cfg.Host = opts.Host
	}
	if opts.Port != 0 {
		cfg.Port = opts.Port
	}
	if opts.Timeout > 0 {
		cfg.Timeout = robot.Duration(opts.Timeout)
	}
	return cfg, nil
}

func newClient() (*robot.Client, robot.Config, error) {
	cfg, err := robotConfig()
	if err != nil {
		return nil, cfg, err
	}
	return robot.NewClient(cfg, nil), cfg, nil
}

// interruptContext is cancelled on Ctrl+C or SIGTERM.
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
