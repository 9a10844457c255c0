package enginehost

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration document.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
}

// EngineConfig describes which engine to run and how to talk to it.
// Immutable once handed to New.
type EngineConfig struct {
	// Dir and Name locate the engine executable, joined as dir/name.
	Dir  string `yaml:"dir"`
	Name string `yaml:"name"`

	// Protocol selects the adapter: "xboard" for the line-based
	// protocol, anything else for UCI.
	Protocol string `yaml:"protocol"`

	// EngineOptions become --key=value launch flags.
	EngineOptions map[string]any `yaml:"engine_options"`

	// SilenceStderr discards the engine's stderr instead of inheriting
	// the parent's.
	SilenceStderr bool `yaml:"silence_stderr"`

	// UCIOptions and XBoardOptions configure the engine after the
	// handshake. Only the block matching the resolved protocol is used.
	// Each block may carry a protocol control key on top of plain engine
	// options: "go_commands" (UCI search overrides) or "egtpath"
	// (XBoard tablebase type to path mapping).
	UCIOptions    map[string]any `yaml:"uci_options"`
	XBoardOptions map[string]any `yaml:"xboard_options"`
}

// LoadConfig decodes a YAML configuration document and validates it.
// Unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("enginehost: parse config: %w", err)
	}
	if err := cfg.Engine.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports whether the configuration names an engine to run.
func (c EngineConfig) Validate() error {
	if c.Dir == "" {
		return errors.New("enginehost: engine.dir is required")
	}
	if c.Name == "" {
		return errors.New("enginehost: engine.name is required")
	}
	return nil
}

// ProtocolOptions returns the options block matching the resolved
// protocol. May be nil when the block is absent from configuration.
func (c EngineConfig) ProtocolOptions() map[string]any {
	if ParseProtocol(c.Protocol) == ProtocolXBoard {
		return c.XBoardOptions
	}
	return c.UCIOptions
}
