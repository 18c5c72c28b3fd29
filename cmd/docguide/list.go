package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/eringen/docguide"
	"github.com/eringen/docguide/views"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the registered guides",
	RunE:    runList,
}

func init() {
	listCmd.Flags().Bool("json", false, "Print the guides as JSON")
}

type guideRow struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Section string `json:"section"`
	Steps   int    `json:"steps"`
	Path    string `json:"path"`
}

func runList(cmd *cobra.Command, _ []string) error {
	app, log, err := newApp(func(c *docguide.SiteConfig) {
		c.DisableHighlightCache = true
	})
	if err != nil {
		return err
	}
	defer log.Sync()
	defer app.Close()

	if err := app.Load(); err != nil {
		return err
	}

	var rows []guideRow
	for _, g := range app.Registry.List() {
		rows = append(rows, guideRow{
			Slug:    g.Slug,
			Title:   g.Meta.Title,
			Section: g.Meta.Section,
			Steps:   len(g.Steps),
			Path:    views.GuidePath(g.Slug),
		})
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}
	say(cmd, "%s", renderTable(rows))
	return nil
}

// renderTable lays rows out in padded columns under a bold header.
func renderTable(rows []guideRow) string {
	header := []string{"SLUG", "TITLE", "SECTION", "STEPS", "PATH"}
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Slug, r.Title, r.Section, strconv.Itoa(r.Steps), r.Path})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range cells {
		for i, c := range row {
			if w := lipgloss.Width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}

	line := func(row []string) string {
		parts := make([]string, len(row))
		for i, c := range row {
			parts[i] = c + strings.Repeat(" ", widths[i]-lipgloss.Width(c))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	var b strings.Builder
	b.WriteString(paint(styleCyan, line(header)) + "\n")
	for _, row := range cells {
		b.WriteString(line(row) + "\n")
	}
	fmt.Fprintf(&b, "%s\n", paint(styleGray, fmt.Sprintf("%d guide(s)", len(rows))))
	return b.String()
}
