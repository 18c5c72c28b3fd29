package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/docguide"
	"github.com/eringen/docguide/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create a .docguide.yaml config and a starter guide",
	Long: `Write a .docguide.yaml config file, a .gitignore and a starter guide
under guides/ into dir (default: the current directory).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	f := initCmd.Flags()
	f.String("framework", "Vite", "Framework the starter guide installs Tailwind CSS into")
	f.Bool("force", false, "Overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	framework, _ := cmd.Flags().GetString("framework")
	force, _ := cmd.Flags().GetBool("force")
	siteName := k.String("site.name")
	if siteName == "" {
		siteName = toTitle(filepath.Base(abs))
	}
	data := scaffold.Data{
		SiteName:  siteName,
		Framework: framework,
		Slug:      docguide.Slugify(framework),
	}
	if data.Slug == "" {
		return fmt.Errorf("framework %q does not produce a usable slug", framework)
	}

	written, err := scaffold.Write(dir, data, force)
	for _, p := range written {
		say(cmd, "  %s %s\n", paint(styleGreen, "created"), p)
	}
	if err != nil {
		return err
	}

	say(cmd, "\nNext steps:\n\n")
	if dir != "." {
		say(cmd, "  cd %s\n", dir)
	}
	say(cmd, "  docguide validate\n  docguide serve\n")
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-docs" -> "My Docs", "mydocs" -> "Mydocs"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
