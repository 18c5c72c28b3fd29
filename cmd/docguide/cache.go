package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/eringen/docguide"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the highlight cache",
}

var cacheStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show how many highlighted samples are cached",
	RunE:  runCacheStats,
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every cached highlight",
	RunE:  runCachePurge,
}

func init() {
	cacheCmd.AddCommand(cacheStatsCmd)
	cacheCmd.AddCommand(cachePurgeCmd)
}

func openStore() (*docguide.Store, string, error) {
	path := buildSiteConfig().CachePath
	s, err := docguide.NewStore(path)
	return s, path, err
}

func runCacheStats(cmd *cobra.Command, _ []string) error {
	s, path, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.Stats()
	if err != nil {
		return err
	}
	say(cmd, "%s %s\n", paint(styleCyan, "Cache"), path)
	say(cmd, "  entries: %d\n", stats.Entries)
	for _, lang := range stats.Langs() {
		say(cmd, "  %-12s %d\n", lang, stats.ByLang[lang])
	}
	if stats.Entries > 0 {
		say(cmd, "  %s\n", paint(styleGray, "oldest "+stats.Oldest.Format(time.RFC3339)+", newest "+stats.Newest.Format(time.RFC3339)))
	}
	return nil
}

func runCachePurge(cmd *cobra.Command, _ []string) error {
	s, path, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	n, err := s.Purge()
	if err != nil {
		return err
	}
	say(cmd, "%s %d entries from %s\n", paint(styleGreen, "Purged"), n, path)
	return nil
}
