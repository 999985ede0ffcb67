package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/gwillem/rodi/pkg/robot"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type SetupCommand struct{}

func (c *SetupCommand) Execute(args []string) error {
	fmt.Println(headerStyle.Render("RoDI Setup"))
	fmt.Println(dimStyle.Render("━━━━━━━━━━"))
	fmt.Println()

	cfg, err := robotConfig()
	if err != nil {
		return err
	}

	host := cfg.Host
	port := strconv.Itoa(cfg.Port)
	timeout := cfg.Timeout.String()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Robot address").
				Description("192.168.4.1 when connected to the robot's own access point").
				Value(&host),
			huh.NewInput().
				Title("Port").
				Value(&port).
				Validate(func(s string) error {
					if _, err := strconv.Atoi(s); err != nil {
						return fmt.Errorf("port must be a number")
					}
					return nil
				}),
			huh.NewInput().
				Title("Request timeout").
				Description("Requests slower than this are dropped silently").
				Value(&timeout).
				Validate(func(s string) error {
					_, err := time.ParseDuration(s)
					return err
				}),
		),
	)
	if err := form.Run(); err != nil {
		fmt.Println()
		return nil
	}

	cfg.Host = host
	cfg.Port, _ = strconv.Atoi(port)
	d, _ := time.ParseDuration(timeout)
	cfg.Timeout = robot.Duration(d)

	if err := cfg.SaveTo(opts.Config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Println(successStyle.Render("Setup complete!"))
	fmt.Printf("Configuration saved to %s\n", opts.Config)
	fmt.Println()
	fmt.Println("Check the connection with: " + headerStyle.Render("rodi info"))
	return nil
}
