// Package gamedata provides the embedded bestiary, item, treasure, theme and
// room designation catalogs and utilities for loading them.
package gamedata

import "embed"

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS
