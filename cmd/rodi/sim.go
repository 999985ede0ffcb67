package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gwillem/rodi/pkg/robot"
	"github.com/gwillem/rodi/pkg/sim"
)

type SimCommand struct {
	Listen   string        `long:"listen" default:":1234" description:"Address to serve the robot protocol on"`
	Distance int           `long:"distance" default:"50" description:"Initial distance to the obstacle in cm"`
	Line     []int         `long:"line" description:"Initial line sensor values (give twice)"`
	Light    int           `long:"light" default:"512" description:"Ambient light reading"`
	Latency  time.Duration `long:"latency" description:"Delay every response (use more than the client timeout to simulate a lost robot)"`
}

func (c *SimCommand) Execute(args []string) error {
	state := sim.DefaultState()
	state.Distance = c.Distance
	state.Light = c.Light
	if len(c.Line) == 2 {
		state.Line = robot.LinePair{c.Line[0], c.Line[1]}
	} else if len(c.Line) != 0 {
		return fmt.Errorf("--line must be given exactly twice")
	}

	fw := sim.New(state, c.Latency)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		if err := fw.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	fmt.Println(headerStyle.Render("RoDI Simulator") + dimStyle.Render(" - listening on "+c.Listen))
	return fw.Listen(c.Listen)
}
