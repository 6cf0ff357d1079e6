package standings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/virtualgrid/league-results-go/log"
	"github.com/virtualgrid/league-results-go/pkg/cmd/util"
	"github.com/virtualgrid/league-results-go/pkg/config"
	"github.com/virtualgrid/league-results-go/pkg/processing/standings"
)

func NewStandingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standings",
		Short: "computes the season standings from all cataloged races",
		RunE: func(cmd *cobra.Command, args []string) error {
			util.InitLogger()
			return showStandings(cmd)
		},
	}
	cmd.Flags().StringVarP(&config.Output, "output", "o", "table",
		"output format (table, json)")
	return cmd
}

func showStandings(cmd *cobra.Command) error {
	env, err := util.Setup(cmd.Context())
	if err != nil {
		return err
	}
	proc := standings.NewProcessor(
		standings.WithPointsEngine(env.Engine),
		standings.WithRoster(env.Roster))
	for i := range env.Events {
		if env.Events[i].Err != nil {
			continue
		}
		proc.ProcessRace(env.Events[i].Event)
	}
	rows := proc.Standings()
	log.Debug("standings computed",
		log.Int("races", len(env.Events)),
		log.Int("drivers", len(rows)))

	if config.Output == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Pos", "Driver", "Team", "Points", "Starts", "Wins", "Podiums"})
	for i, row := range rows {
		t.AppendRow(table.Row{
			i + 1, row.DriverName, row.Team, row.Points, row.Starts, row.Wins, row.Podiums,
		})
	}
	t.Render()
	return nil
}
