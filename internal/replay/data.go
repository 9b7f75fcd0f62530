// Package replay records brawler runs as the seed, selection, and command
// stream, and re-runs them headless to reproduce the exact outcome.
package replay

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
)

// Version is the replay file format version.
const Version = "1"

// Run is a run-length encoded stretch of identical commands.
type Run struct {
	Cmd   string `yaml:"cmd"`
	Count int    `yaml:"n"`
}

// Result is the state a replay must end in.
type Result struct {
	Phase string `yaml:"phase"`
	Level int    `yaml:"level"`
	Score int    `yaml:"score"`
	Tick  int    `yaml:"tick"`
	Hash  string `yaml:"hash"` // Snapshot hash, hex
}

// Data contains everything needed to replay a run.
// The config is embedded so a replay stays valid after local tuning changes.
type Data struct {
	Version    string               `yaml:"version"`
	ID         string               `yaml:"id"`
	GameID     string               `yaml:"game"`
	Seed       int64                `yaml:"seed"`
	Archetype  string               `yaml:"archetype"`
	Difficulty string               `yaml:"difficulty"`
	StartTime  string               `yaml:"start_time"`
	Config     config.BrawlerConfig `yaml:"config"`
	Runs       []Run                `yaml:"runs"`
	Final      *Result              `yaml:"final,omitempty"`
}

// Steps returns the total number of recorded commands.
func (d Data) Steps() int {
	n := 0
	for _, r := range d.Runs {
		n += r.Count
	}
	return n
}
