// Package properties holds the key/value process configuration assembled
// before handoff and made visible to the launched entry point.
package properties

import (
	"maps"
	"strings"
)

// View is the read-only surface handed to entry points.
type View interface {
	Get(key string) (string, bool)
	Keys() []string
	Snapshot() map[string]string
}

// Properties is an ordered string map. Re-setting a key overwrites its value
// but keeps the key's original position. There is no removal.
type Properties struct {
	values map[string]string
	order  []string
}

func New() *Properties {
	return &Properties{values: make(map[string]string)}
}

func (p *Properties) Set(key, value string) {
	if _, ok := p.values[key]; !ok {
		p.order = append(p.order, key)
	}
	p.values[key] = value
}

func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

func (p *Properties) Len() int {
	return len(p.order)
}

// Keys returns keys in first-set order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

func (p *Properties) Snapshot() map[string]string {
	out := make(map[string]string, len(p.values))
	maps.Copy(out, p.values)
	return out
}

// EnvName maps a property key to an environment variable name:
// upper-cased, with '.' and '-' replaced by '_', behind prefix.
func EnvName(prefix, key string) string {
	name := strings.ToUpper(key)
	name = strings.NewReplacer(".", "_", "-", "_").Replace(name)
	return prefix + name
}

// ExportEnv mirrors every property into the environment through setenv
// (normally os.Setenv), in first-set order.
func (p *Properties) ExportEnv(prefix string, setenv func(string, string) error) error {
	for _, key := range p.order {
		if err := setenv(EnvName(prefix, key), p.values[key]); err != nil {
			return err
		}
	}
	return nil
}
