package main

import (
	"os"

	"github.com/gwillem/rodi/pkg/behavior"
)

type FollowCommand struct {
	TUI bool `long:"tui" description:"Show a live chart instead of printing readings"`
}

func (c *FollowCommand) Execute(args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	cfg := behavior.Config{}
	if !c.TUI {
		cfg.Out = os.Stdout
		cfg.Log = os.Stderr
	}
	f := behavior.NewFollower(client, cfg)

	return runLoop(f, dashboardConfig{
		title:  "RoDI Follow",
		addr:   client.Addr(),
		series: []series{distanceSeries, lineSeries(0), lineSeries(1)},
		yMax:   1023,
	}, c.TUI)
}
