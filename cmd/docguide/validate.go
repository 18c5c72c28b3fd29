package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/docguide"
	"github.com/eringen/docguide/guide"
	"github.com/eringen/docguide/highlight"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check guide files and their code samples",
	Long: `Load the built-in guide and every guide file, then check that each
code sample parses for its language and has a highlighter.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().Bool("strict", false, "Treat languages without a highlighter as errors")
}

// guideIssues checks every highlightable sample of g. Samples without a
// chroma lexer are warnings, or errors when strict is set.
func guideIssues(g guide.Guide, strict bool) (errs, warns []string) {
	for i, s := range g.Steps {
		if !s.Code.Highlightable() {
			continue
		}
		where := fmt.Sprintf("step %d (%s)", i+1, s.Code.Name)
		if err := highlight.Check(s.Code.Code, s.Code.Lang); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", where, err))
		}
		if !highlight.Known(s.Code.Lang) {
			msg := fmt.Sprintf("%s: no highlighter for %q", where, s.Code.Lang)
			if strict {
				errs = append(errs, msg)
			} else {
				warns = append(warns, msg)
			}
		}
	}
	return errs, warns
}

func runValidate(cmd *cobra.Command, _ []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	cfg := buildSiteConfig()
	loader := guide.NewLoader(guide.WithIgnoreFile(cfg.IgnoreFile))

	files, err := loader.Discover(cfg.GuidePatterns)
	if err != nil {
		return err
	}

	type source struct {
		name  string
		guide guide.Guide
	}
	sources := []source{{name: "built-in", guide: guide.Phoenix()}}
	problems := 0
	for _, f := range files {
		g, err := loader.LoadFile(f)
		if err != nil {
			problems++
			say(cmd, "%s %s\n  %v\n", paint(styleRed, "✗"), f, err)
			continue
		}
		sources = append(sources, source{name: f, guide: g})
	}

	guides := make([]guide.Guide, 0, len(sources))
	for _, src := range sources {
		guides = append(guides, src.guide)
		errs, warns := guideIssues(src.guide, strict)
		mark := paint(styleGreen, "✓")
		if len(errs) > 0 {
			mark = paint(styleRed, "✗")
		}
		say(cmd, "%s %s %s\n", mark, paint(styleCyan, src.guide.Slug), paint(styleGray, src.name))
		for _, e := range errs {
			say(cmd, "  %s %s\n", paint(styleRed, "error"), e)
		}
		for _, w := range warns {
			say(cmd, "  %s %s\n", paint(styleYellow, "warning"), w)
		}
		problems += len(errs)
	}

	if _, err := docguide.NewRegistry(guides...); err != nil {
		problems++
		say(cmd, "%s %v\n", paint(styleRed, "✗"), err)
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found", problems)
	}
	say(cmd, "%s %d guide(s) valid\n", paint(styleGreen, "OK"), len(guides))
	return nil
}
