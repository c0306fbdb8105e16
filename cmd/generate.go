package cmd

import (
	"fmt"

	"github.com/Muneer320/Class-Timetable/pkg/generator"
	"github.com/Muneer320/Class-Timetable/pkg/timetable"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Regenerate the published JSON datasets from the master sheet",
	Long: `Run the offline data production step: read the master spreadsheet
(either a local .xlsx export or the sheet's publish-to-web HTML page), parse
the grid into per-group schedules, and write the JSON files the viewer
consumes. Optionally mirrors the snapshot into a Postgres backup database.

Configuration comes from the environment (or a .env file):
  TIMETABLE_SHEET_URL or TIMETABLE_SHEET_FILE (one required)
  TIMETABLE_OUTPUT_DIR, TIMETABLE_GROUPS, TIMETABLE_DATABASE_URL`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := generator.NewLogger()

		cfg, err := generator.LoadConfig()
		if err != nil {
			return err
		}

		var rows [][]string
		if cfg.SheetFile != "" {
			log.Info().Str("file", cfg.SheetFile).Int("sheet", cfg.SheetIndex).Msg("reading spreadsheet")
			rows, err = generator.ReadXLSX(cfg.SheetFile, cfg.SheetIndex)
		} else {
			log.Info().Str("url", cfg.SheetURL).Msg("fetching published sheet")
			rows, err = generator.ReadPublishedSheet(cfg.SheetURL)
		}
		if err != nil {
			return fmt.Errorf("failed to read sheet: %w", err)
		}
		log.Info().Int("rows", len(rows)).Msg("sheet loaded")

		parsed, err := generator.ParseGrid(rows, cfg.Groups)
		if err != nil {
			return fmt.Errorf("failed to parse timetable grid: %w", err)
		}

		valid, rejected := generator.FilterValid(parsed)
		for _, e := range rejected {
			log.Warn().
				Str("group", e.Group).
				Str("day", e.Day).
				Str("course", e.Course.CourseName).
				Str("window", e.TimeSlot.StartTime+"-"+e.TimeSlot.EndTime).
				Msg("dropping invalid entry")
		}
		logGroupCounts(log.Info(), valid, cfg.Groups)

		snap := generator.BuildSnapshot(valid, cfg.Groups)
		if err := generator.WriteJSON(snap, cfg.OutputDir); err != nil {
			return fmt.Errorf("failed to write JSON files: %w", err)
		}
		log.Info().Str("dir", cfg.OutputDir).Msg("JSON datasets written")

		if cfg.DatabaseURL != "" {
			if err := generator.SaveToDatabase(cfg.DatabaseURL, valid, cfg.Groups); err != nil {
				return fmt.Errorf("failed to save backup database: %w", err)
			}
			log.Info().Msg("backup database updated")
		}

		log.Info().Int("entries", snap.Metadata.TotalEntries).Msg("generation complete")
		return nil
	},
}

func logGroupCounts(evt *zerolog.Event, entries map[string][]*timetable.ScheduleEntry, groups []string) {
	for _, g := range groups {
		evt = evt.Int("group_"+g, len(entries[g]))
	}
	evt.Msg("parsed entries per group")
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
