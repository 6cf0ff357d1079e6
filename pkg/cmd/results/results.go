package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/virtualgrid/league-results-go/pkg/cmd/util"
	"github.com/virtualgrid/league-results-go/pkg/config"
	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/processing/finish"
	"github.com/virtualgrid/league-results-go/pkg/results"
	"github.com/virtualgrid/league-results-go/pkg/timing"
)

var sessionArg string

func NewResultsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "results <event-id>",
		Short: "shows the result table of one cataloged race",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			util.InitLogger()
			return showResults(cmd, args[0])
		},
	}
	cmd.Flags().StringVarP(&sessionArg, "session", "s", "race",
		"session to show (race, qualify)")
	cmd.Flags().StringVarP(&config.Output, "output", "o", "table",
		"output format (table, json)")
	return cmd
}

func sessionName(arg string) (string, error) {
	switch strings.ToLower(arg) {
	case "race":
		return model.SessionRace, nil
	case "qualify", "qualifying":
		return model.SessionQualify, nil
	default:
		return "", fmt.Errorf("unknown session %q", arg)
	}
}

//nolint:funlen // mostly table layout
func showResults(cmd *cobra.Command, eventID string) error {
	name, err := sessionName(sessionArg)
	if err != nil {
		return err
	}
	env, err := util.Setup(cmd.Context())
	if err != nil {
		return err
	}
	le, err := env.Catalog.LoadEvent(eventID)
	if err != nil {
		return err
	}
	if le.Err != nil {
		if errors.Is(le.Err, results.ErrNoResult) {
			fmt.Println("Result file is invalid")
			return nil
		}
		return le.Err
	}

	sess, err := results.FindSession(le.Event, name)
	if err != nil {
		fmt.Printf("No %s session in this result\n", strings.ToLower(name))
		return nil
	}
	rows := finish.Annotate(le.Event, sess)

	if config.Output == "json" {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("%s — %s %s (%s)\n",
		util.EventTitle(le),
		le.Event.Track.Name, le.Event.Track.Config,
		le.Event.StartTime)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Pos", "Driver", "Car", "Laps", "Gap", "Best Lap", "Points"})
	for i := range rows {
		fr := &rows[i]
		t.AppendRow(table.Row{
			finish.DisplayPosition(&fr.Row),
			fr.Row.DisplayName,
			fr.Row.CarName,
			lapsDisplay(fr.Row.LapsComplete),
			timing.GapMs(fr.IntervalMs),
			bestLapDisplay(fr.BestLapMs),
			env.Engine.Resolve(&fr.Row, fr.Position),
		})
	}
	t.Render()
	return nil
}

func lapsDisplay(laps *int) string {
	if laps == nil {
		return timing.Placeholder
	}
	return fmt.Sprintf("%d", *laps)
}

func bestLapDisplay(ms int64) string {
	if ms <= 0 {
		return timing.Placeholder
	}
	return timing.Clock(ms)
}
