package enginehost

import (
	"strings"
	"testing"
)

const fullConfig = `
engine:
  dir: ./engines
  name: stockfish
  protocol: uci
  engine_options:
    cpuct: 3.1
  silence_stderr: true
  uci_options:
    Move Overhead: 100
    go_commands:
      movetime: 1000
  xboard_options:
    memory: 64
`

func TestLoadConfig_Full(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(fullConfig))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	eng := cfg.Engine
	if eng.Dir != "./engines" || eng.Name != "stockfish" {
		t.Errorf("executable = %q/%q, want ./engines/stockfish", eng.Dir, eng.Name)
	}
	if eng.Protocol != "uci" {
		t.Errorf("Protocol = %q, want uci", eng.Protocol)
	}
	if !eng.SilenceStderr {
		t.Error("SilenceStderr not decoded")
	}
	if got := eng.EngineOptions["cpuct"]; got != 3.1 {
		t.Errorf("EngineOptions[cpuct] = %v, want 3.1", got)
	}
	if got := eng.UCIOptions["Move Overhead"]; got != 100 {
		t.Errorf("UCIOptions[Move Overhead] = %v, want 100", got)
	}
	gc, ok := eng.UCIOptions["go_commands"].(map[string]any)
	if !ok {
		t.Fatalf("go_commands = %T, want a nested map", eng.UCIOptions["go_commands"])
	}
	if gc["movetime"] != 1000 {
		t.Errorf("go_commands[movetime] = %v, want 1000", gc["movetime"])
	}
	if got := eng.XBoardOptions["memory"]; got != 64 {
		t.Errorf("XBoardOptions[memory] = %v, want 64", got)
	}
}

func TestLoadConfig_UnknownFieldRejected(t *testing.T) {
	doc := "engine:\n  dir: ./engines\n  name: stockfish\n  threads: 4\n"
	if _, err := LoadConfig(strings.NewReader(doc)); err == nil {
		t.Fatal("LoadConfig() error = nil, want unknown-field error")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	if _, err := LoadConfig(strings.NewReader("engine: [")); err == nil {
		t.Fatal("LoadConfig() error = nil, want parse error")
	}
}

func TestLoadConfig_RequiresExecutable(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing_dir", "engine:\n  name: stockfish\n"},
		{"missing_name", "engine:\n  dir: ./engines\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfig(strings.NewReader(tt.doc)); err == nil {
				t.Fatal("LoadConfig() error = nil, want validation error")
			}
		})
	}
}

func TestEngineConfig_ProtocolOptions(t *testing.T) {
	cfg := EngineConfig{
		UCIOptions:    map[string]any{"Hash": 128},
		XBoardOptions: map[string]any{"memory": 64},
	}

	cfg.Protocol = "uci"
	if got := cfg.ProtocolOptions(); got["Hash"] != 128 {
		t.Errorf("uci options = %v, want the uci_options block", got)
	}
	cfg.Protocol = "xboard"
	if got := cfg.ProtocolOptions(); got["memory"] != 64 {
		t.Errorf("xboard options = %v, want the xboard_options block", got)
	}
	cfg.Protocol = "homemade"
	if got := cfg.ProtocolOptions(); got["Hash"] != 128 {
		t.Errorf("fallback options = %v, want the uci_options block", got)
	}
}
