package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "docguide",
	Short: "Build and serve framework install guides",
	Long: `docguide renders step-by-step framework install guides.
Code samples are syntax-highlighted at build time and the pages are
either exported as a static site or served over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// addGlobalFlags registers the flags shared by every command. Defaults are
// left empty so a config file or the environment can fill them.
func addGlobalFlags(f *pflag.FlagSet) {
	f.BoolP("verbose", "v", false, "Enable verbose logging")
	f.Bool("quiet", false, "Suppress all output (exit code only)")
	f.Bool("color", true, "Colorize terminal output")
	f.String("config", ".docguide.yaml", "Config file path")

	f.String("name", "", `Site name (default "Tailwind CSS")`)
	f.String("url", "", `Canonical site URL (default "http://localhost:3000")`)
	f.String("description", "", "Site description")
	f.StringSlice("guides", nil, `Glob patterns for guide files (default "guides/**/*.yaml")`)
	f.String("ignore-file", "", `Gitignore-style file applied to guide discovery (default ".gitignore")`)
	f.String("style", "", `Chroma highlight style (default "github")`)
	f.String("cache", "", `SQLite highlight cache path (default "data/highlight.db")`)
	f.Bool("no-cache", false, "Do not persist highlighted code")
	f.String("log-mode", "", `Log format: dev|prod (default "dev")`)
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
