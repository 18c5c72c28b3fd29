package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export every guide as a static site",
	Long: `Prepare every guide's code samples and write the static site:
one page and one props.json per guide, the index, a sitemap and the
stylesheets.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("out", "", `Output directory (default "dist")`)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	app, log, err := newApp()
	if err != nil {
		return err
	}
	defer log.Sync()
	defer app.Close()

	res, err := app.Build(cmd.Context())
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	say(cmd, "%s %d guide(s) into %s in %s\n",
		paint(styleGreen, "Built"), res.Pages, res.OutDir, res.Duration.Round(time.Millisecond))
	if k.Bool("verbose") {
		for _, f := range res.Files {
			say(cmd, "  %s\n", paint(styleGray, f))
		}
	}
	return nil
}
