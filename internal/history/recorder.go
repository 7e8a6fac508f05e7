package history

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/coder/quartz"
	"github.com/lox/hanabot/internal/game"
)

// DirRecorder writes one record file per game into Dir. It satisfies
// simulator.Recorder.
type DirRecorder struct {
	dir   string
	rules game.Rules
	agent string
	clock quartz.Clock
}

// NewDirRecorder creates dir if needed. agent labels every record.
func NewDirRecorder(dir string, rules game.Rules, agent string, clock quartz.Clock) (*DirRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return &DirRecorder{dir: dir, rules: rules, agent: agent, clock: clock}, nil
}

// Record writes res to <dir>/<id>.toml.
func (d *DirRecorder) Record(seed int64, res *game.Result) error {
	r, err := NewRecord(seed, d.rules, res, d.clock.Now())
	if err != nil {
		return err
	}
	r.Agent = d.agent
	return WriteFile(filepath.Join(d.dir, r.ID+".toml"), r)
}
