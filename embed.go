package docguide

import "embed"

// EmbeddedAssets contains static assets shipped with the engine: docs.css
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
