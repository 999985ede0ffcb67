package main

import (
	"os"

	"github.com/gwillem/rodi/pkg/behavior"
)

type AvoidCommand struct {
	TUI bool `long:"tui" description:"Show a live chart instead of printing readings"`
}

func (c *AvoidCommand) Execute(args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	cfg := behavior.Config{}
	if !c.TUI {
		cfg.Out = os.Stdout
		cfg.Log = os.Stderr
	}
	a := behavior.NewAvoider(client, cfg)

	return runLoop(a, dashboardConfig{
		title:  "RoDI Avoid",
		addr:   client.Addr(),
		series: []series{distanceSeries},
		yMax:   maxDistance,
	}, c.TUI)
}
