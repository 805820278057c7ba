package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/launchwrap/internal/entrypoint"
	"github.com/danmuck/launchwrap/internal/handoff"
)

// Manifest is the parent-side description of one launch.
type Manifest struct {
	EntryPoint string          `toml:"entry_point"`
	Args       []string        `toml:"args"`
	Properties []PropertyEntry `toml:"property"`
}

// PropertyEntry keeps properties as an array of tables so their order
// survives decoding.
type PropertyEntry struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}

func LoadManifest(path string) (Manifest, error) {
	var m Manifest
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("load manifest: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Manifest{}, fmt.Errorf("load manifest: unknown key %q", undecoded[0].String())
	}
	m.EntryPoint = strings.TrimSpace(m.EntryPoint)
	if err := ValidateManifest(m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

func ValidateManifest(m Manifest) error {
	if err := entrypoint.ValidateName(m.EntryPoint); err != nil {
		return fmt.Errorf("manifest entry_point: %w", err)
	}
	for i, p := range m.Properties {
		if p.Key == "" {
			return fmt.Errorf("property[%d] invalid: key is required", i)
		}
	}
	for _, cmd := range m.Commands() {
		if err := cmd.Validate(); err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	}
	return nil
}

// Commands renders the manifest in emission order: properties, then args,
// then launch.
func (m Manifest) Commands() []handoff.Command {
	out := make([]handoff.Command, 0, len(m.Properties)+len(m.Args)+1)
	for _, p := range m.Properties {
		out = append(out, handoff.Property(p.Key, p.Value))
	}
	for _, arg := range m.Args {
		out = append(out, handoff.Arg(arg))
	}
	return append(out, handoff.Launch(m.EntryPoint))
}
