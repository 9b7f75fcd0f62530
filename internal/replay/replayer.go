package replay

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
)

// ErrMismatch is returned when playback ends in a different state than
// the one stamped into the replay.
var ErrMismatch = errors.New("replay: playback diverged")

// Load reads replay data from a YAML file.
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}

	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("replay: cannot decode %s: %w", path, err)
	}
	if d.Version != Version {
		return nil, fmt.Errorf("replay: unsupported version %q", d.Version)
	}
	return &d, nil
}

// Replayer hands out recorded commands in order.
type Replayer struct {
	runs  []Run
	run   int // Index into runs
	used  int // Commands consumed from the current run
	total int
	step  int
}

// NewReplayer creates a replayer over recorded data.
func NewReplayer(d Data) *Replayer {
	return &Replayer{runs: d.Runs, total: d.Steps()}
}

// Next returns the next command and advances. ok is false at the end.
func (r *Replayer) Next() (cmd brawler.Command, ok bool, err error) {
	for r.run < len(r.runs) && r.used >= r.runs[r.run].Count {
		r.run++
		r.used = 0
	}
	if r.run >= len(r.runs) {
		return brawler.CmdNoOp, false, nil
	}

	cmd, err = brawler.ParseCommand(r.runs[r.run].Cmd)
	if err != nil {
		return brawler.CmdNoOp, false, fmt.Errorf("replay: step %d: %w", r.step, err)
	}
	r.used++
	r.step++
	return cmd, true, nil
}

// CurrentStep returns the number of commands handed out so far.
func (r *Replayer) CurrentStep() int {
	return r.step
}

// TotalSteps returns the number of recorded commands.
func (r *Replayer) TotalSteps() int {
	return r.total
}

// Play re-runs a replay headless and returns its final state.
// observe, when non-nil, sees every step as the live game did.
// When the replay carries a final state, a different outcome is ErrMismatch.
func Play(d Data, observe brawler.StepObserver) (Result, error) {
	s, err := brawler.NewSession(d.Config, d.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	if err := s.Reset(d.Archetype, config.DifficultyPreset(d.Difficulty)); err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}

	rp := NewReplayer(d)
	for {
		cmd, ok, err := rp.Next()
		if err != nil {
			return Result{}, err
		}
		if !ok {
			break
		}
		res, err := s.Step(cmd)
		if err != nil {
			return *resultOf(s), fmt.Errorf("replay: step %d of %d: %w", rp.CurrentStep(), rp.TotalSteps(), err)
		}
		if observe != nil {
			observe(cmd, res)
		}
	}

	got := *resultOf(s)
	if d.Final != nil && *d.Final != got {
		return got, fmt.Errorf("%w: recorded %+v, replayed %+v", ErrMismatch, *d.Final, got)
	}
	return got, nil
}

func resultOf(s *brawler.Session) *Result {
	snap := s.Snapshot()
	return &Result{
		Phase: s.Phase().String(),
		Level: s.Level(),
		Score: s.Score(),
		Tick:  s.Tick(),
		Hash:  fmt.Sprintf("%016x", snap.Hash()),
	}
}
