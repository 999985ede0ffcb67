package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/gwillem/rodi/pkg/robot"
)

type InfoCommand struct{}

func (c *InfoCommand) Execute(args []string) error {
	client, cfg, err := newClient()
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render("RoDI Info"))
	fmt.Printf("Robot at %s (timeout %s)\n\n", client.Addr(), cfg.Timeout)

	ctx := context.Background()
	sensors := []struct {
		name string
		read func(context.Context) (robot.Reading, error)
	}{
		{"see (cm)", client.See},
		{"sense (line)", client.Sense},
		{"light", client.Light},
		{"imu", client.IMU},
	}

	tableHeaderStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")).Padding(0, 1)
	tableNameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Padding(0, 1)
	tableCellStyle := lipgloss.NewStyle().Padding(0, 1)
	tableMissingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(0, 1)

	var rows [][]string
	var missing []bool
	for _, s := range sensors {
		r, err := s.read(ctx)
		switch {
		case err != nil:
			rows = append(rows, []string{s.name, "error: " + err.Error()})
			missing = append(missing, true)
		case !r.Present():
			rows = append(rows, []string{s.name, "no reading (timeout)"})
			missing = append(missing, true)
		default:
			rows = append(rows, []string{s.name, r.String()})
			missing = append(missing, false)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Sensor", "Reading").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}
			if col == 0 {
				return tableNameStyle
			}
			if row >= 0 && row < len(missing) && missing[row] {
				return tableMissingStyle
			}
			return tableCellStyle
		})

	fmt.Println(t)
	return nil
}
