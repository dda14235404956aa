package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/qyinm/modeldeck/browse"
	"github.com/qyinm/modeldeck/mcpsrv/dto"
	"github.com/qyinm/modeldeck/types"
	"github.com/qyinm/modeldeck/ui"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the models matching the search, category and sort flags",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	cmd.Flags().Bool("json", false, "Print JSON instead of a table")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print model counts per category",
		Args:  cobra.NoArgs,
		RunE:  runStats,
	}
}

func runList(cmd *cobra.Command, _ []string) error {
	engine, state, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()

	records := engine.Visible(state)
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(dto.FromModels(records))
	}
	return writeList(out, records, engine.Len())
}

func runStats(cmd *cobra.Command, _ []string) error {
	engine, _, closer, err := setup(cmd)
	if err != nil {
		return err
	}
	defer closer.Close()
	return writeStats(cmd.OutOrStdout(), engine.Stats())
}

func writeList(w io.Writer, records []types.ModelRecord, total int) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.DraculaComment)).
		Headers("ID", "NAME", "DEVELOPER", "CATEGORY", "RELEASED", "PRICE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return ui.FieldLabelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, r := range records {
		t.Row(r.ID(), r.Name(), r.Developer(), r.Category().String(), r.ReleaseDate(), r.Price())
	}

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing %d of %d models\n", len(records), total)
	return err
}

func writeStats(w io.Writer, stats browse.Stats) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ui.DraculaComment)).
		Headers("CATEGORY", "MODELS")
	for _, c := range types.Categories {
		t.Row(c.Icon()+" "+c.String(), strconv.Itoa(stats.Count(c)))
	}
	t.Row("Total", strconv.Itoa(stats.Total))

	_, err := fmt.Fprintln(w, t.String())
	return err
}
