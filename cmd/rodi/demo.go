package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gwillem/rodi/pkg/behavior"
)

type DemoCommand struct{}

func (c *DemoCommand) Execute(args []string) error {
	client, _, err := newClient()
	if err != nil {
		return err
	}

	ctx, cancel := interruptContext()
	defer cancel()

	fmt.Println(headerStyle.Render("RoDI Demo") + dimStyle.Render(" - "+client.Addr()))
	err = behavior.Demo(ctx, client, behavior.Config{Out: os.Stdout})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
