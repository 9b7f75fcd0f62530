package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

// Recorder captures the commands of one run.
type Recorder struct {
	data      Data
	recording bool
}

// NewRecorder starts recording a run that was just reset on s.
func NewRecorder(gameID string, s *brawler.Session) *Recorder {
	return &Recorder{
		data: Data{
			Version:    Version,
			ID:         uuid.NewString(),
			GameID:     gameID,
			Seed:       s.Seed(),
			Archetype:  s.Archetype(),
			Difficulty: string(s.Difficulty()),
			StartTime:  time.Now().Format(time.RFC3339),
			Config:     s.Config(),
			Runs:       make([]Run, 0, 64),
		},
		recording: true,
	}
}

// ID returns the replay's unique identifier.
func (r *Recorder) ID() string {
	return r.data.ID
}

// Record appends one step. It matches brawler.StepObserver, so a recorder
// can be attached to a game directly. Recording stops once the run ends.
func (r *Recorder) Record(cmd brawler.Command, res brawler.StepResult) {
	if !r.recording {
		return
	}

	name := cmd.String()
	if n := len(r.data.Runs); n > 0 && r.data.Runs[n-1].Cmd == name {
		r.data.Runs[n-1].Count++
	} else {
		r.data.Runs = append(r.data.Runs, Run{Cmd: name, Count: 1})
	}

	if res.Phase.Terminal() {
		r.recording = false
	}
}

// Finish stamps the final state of s so playback can be verified.
func (r *Recorder) Finish(s *brawler.Session) {
	r.recording = false
	r.data.Final = resultOf(s)
}

// Finished reports whether the recorded run has ended.
func (r *Recorder) Finished() bool {
	return !r.recording
}

// Data returns a copy of the recorded data.
func (r *Recorder) Data() Data {
	d := r.data
	d.Runs = append([]Run(nil), r.data.Runs...)
	return d
}

// Save writes the replay as YAML, creating parent directories.
func (r *Recorder) Save(path string) error {
	if len(r.data.Runs) == 0 {
		return fmt.Errorf("replay: no steps to save")
	}
	return Save(path, r.data)
}

// Save writes replay data to path as YAML.
func Save(path string, d Data) error {
	out, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("replay: cannot encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("replay: cannot create directory: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// DefaultDir returns ~/.brawler/replays, or ./replays without a home directory.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "replays"
	}
	return filepath.Join(home, ".brawler", "replays")
}

// FileName returns the conventional file name for a replay.
func FileName(d Data) string {
	stamp := time.Now().Format("20060102_150405")
	if t, err := time.Parse(time.RFC3339, d.StartTime); err == nil {
		stamp = t.Format("20060102_150405")
	}
	id := d.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s_%s_%s.yaml", d.GameID, stamp, id)
}
