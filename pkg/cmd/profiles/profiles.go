package profiles

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/virtualgrid/league-results-go/pkg/cmd/util"
	"github.com/virtualgrid/league-results-go/pkg/config"
	"github.com/virtualgrid/league-results-go/pkg/model"
	"github.com/virtualgrid/league-results-go/pkg/processing/standings"
	"github.com/virtualgrid/league-results-go/pkg/timing"
)

func NewProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "shows per-driver career profiles across all series",
		RunE: func(cmd *cobra.Command, args []string) error {
			util.InitLogger()
			return showProfiles(cmd)
		},
	}
	cmd.Flags().StringVarP(&config.Output, "output", "o", "table",
		"output format (table, json)")
	return cmd
}

func showProfiles(cmd *cobra.Command) error {
	env, err := util.Setup(cmd.Context())
	if err != nil {
		return err
	}
	proc := standings.NewProfileProcessor(
		standings.WithProfilePointsEngine(env.Engine),
		standings.WithProfileRoster(env.Roster))
	for i := range env.Events {
		if env.Events[i].Err != nil {
			continue
		}
		proc.ProcessRace(env.Events[i].Entry.ID, env.Events[i].Event)
	}
	profiles := proc.Profiles()

	if config.Output == "json" {
		data, err := json.MarshalIndent(profiles, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		"Driver", "Team", "Series", "Points", "Starts", "Wins", "Podiums", "Last Race", "Rating",
	})
	for i := range profiles {
		p := &profiles[i]
		t.AppendRow(table.Row{
			p.DriverName,
			p.Team,
			strings.Join(p.Series, ", "),
			p.Points,
			p.Starts,
			p.Wins,
			p.Podiums,
			lastRaceDisplay(p.LastRace),
			ratingDisplay(p.Rating),
		})
	}
	t.Render()
	return nil
}

func lastRaceDisplay(entry *model.RaceEntry) string {
	if entry == nil {
		return timing.Placeholder
	}
	if entry.StartTime.IsZero() {
		return entry.Track
	}
	return fmt.Sprintf("%s (%s)", entry.Track, entry.StartTime.Format("2006-01-02"))
}

func ratingDisplay(rating *model.RatingSnapshot) string {
	if rating == nil {
		return timing.Placeholder
	}
	return fmt.Sprintf("%d / %.2f", rating.Rating, rating.SafetyRating)
}
