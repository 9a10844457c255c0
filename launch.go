package enginehost

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// BuildCommand assembles the launch command for the configured engine.
// Each engine option renders as a --key=value flag; keys are sorted so
// repeated launches produce the same argv.
//
// The engine's stderr is inherited unless cfg.SilenceStderr discards it.
// A missing or non-executable engine file reports ErrUnavailable; spawn
// failures are never swallowed.
func BuildCommand(cfg EngineConfig) (*exec.Cmd, error) {
	path := filepath.Join(cfg.Dir, cfg.Name)
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, path, err)
	}

	keys := make([]string, 0, len(cfg.EngineOptions))
	for k := range cfg.EngineOptions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	args := make([]string, 0, len(keys))
	for _, k := range keys {
		args = append(args, fmt.Sprintf("--%s=%v", k, cfg.EngineOptions[k]))
	}

	cmd := exec.Command(resolved, args...)
	if !cfg.SilenceStderr {
		// A nil Stderr means the null device; route to the parent's
		// stderr unless the configuration asks for silence.
		cmd.Stderr = os.Stderr
	}
	return cmd, nil
}
