package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/eringen/docguide"
	"github.com/eringen/docguide/logger"
)

var k = koanf.New(".")

const defaultGuidePattern = "guides/**/*.yaml"

// flagKeys maps command-line flags onto config file keys so that every
// source lands on the same key. Flags missing here are read from cobra.
var flagKeys = map[string]string{
	"verbose":     "verbose",
	"quiet":       "quiet",
	"color":       "color",
	"name":        "site.name",
	"url":         "site.url",
	"description": "site.description",
	"addr":        "server.addr",
	"ttl":         "server.ttl",
	"rate-limit":  "server.ratelimit",
	"out":         "build.out",
	"guides":      "guides.patterns",
	"ignore-file": "guides.ignore",
	"style":       "highlight.style",
	"cache":       "cache.path",
	"no-cache":    "cache.disabled",
	"log-mode":    "log.mode",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".docguide.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Unchanged flags only fill keys no other source has set.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return "", nil
		}
		return key, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// DOCGUIDE_SITE_URL -> site.url, DOCGUIDE_CACHE_DISABLED -> cache.disabled
	if err := k.Load(env.Provider("DOCGUIDE_", ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "DOCGUIDE_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildSiteConfig constructs the engine's SiteConfig from koanf state.
// Zero values are left for SiteConfig's own defaults.
func buildSiteConfig() docguide.SiteConfig {
	patterns := stringList("guides.patterns")
	if len(patterns) == 0 {
		patterns = []string{defaultGuidePattern}
	}
	return docguide.SiteConfig{
		Name:                  k.String("site.name"),
		URL:                   k.String("site.url"),
		Description:           k.String("site.description"),
		Addr:                  k.String("server.addr"),
		OutDir:                k.String("build.out"),
		GuidePatterns:         patterns,
		IgnoreFile:            k.String("guides.ignore"),
		HighlightStyle:        k.String("highlight.style"),
		CachePath:             k.String("cache.path"),
		DisableHighlightCache: k.Bool("cache.disabled"),
		PageCacheTTL:          k.Duration("server.ttl"),
		RateLimit:             k.Int("server.ratelimit"),
		LogMode:               k.String("log.mode"),
	}.WithDefaults()
}

// stringList reads a list key. Environment variables arrive as a single
// comma-separated string.
func stringList(key string) []string {
	raw := k.Strings(key)
	if s, ok := k.Get(key).(string); ok {
		raw = []string{s}
	}
	var out []string
	for _, v := range raw {
		out = append(out, strings.Split(v, ",")...)
	}
	return docguide.FilterEmpty(out)
}

func quiet() bool {
	return k.Bool("quiet")
}

// newLogger builds the zap logger for the configured mode. Quiet mode
// discards log output entirely.
func newLogger() (*logger.Logger, error) {
	if quiet() {
		return logger.Nop(), nil
	}
	return logger.New(k.String("log.mode"), k.Bool("verbose"))
}

// newApp builds the engine from the loaded configuration.
func newApp(mutate ...func(*docguide.SiteConfig)) (*docguide.App, *logger.Logger, error) {
	log, err := newLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	cfg := buildSiteConfig()
	for _, fn := range mutate {
		fn(&cfg)
	}
	return docguide.New(cfg, docguide.WithLogger(log)), log, nil
}
