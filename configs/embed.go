// Package configs embeds the default YAML configuration of every demo.
package configs

import "embed"

// FS holds mastermind.yaml, turntracker.yaml and caterpillar.yaml.
//
//go:embed *.yaml
var FS embed.FS
