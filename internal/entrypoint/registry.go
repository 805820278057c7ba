package entrypoint

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/danmuck/launchwrap/internal/properties"
)

var (
	ErrEntryPointExists = errors.New("entrypoint: already registered")
	ErrNilEntryPoint    = errors.New("entrypoint: nil function")
	ErrInvalidName      = errors.New("entrypoint: invalid name")
	ErrNotFound         = errors.New("entrypoint: not found")
)

// Func is a launchable program body. It receives the properties assembled
// before handoff and the ordered argument list.
type Func func(props properties.View, args []string) error

// Resolver turns an entry point name into a callable.
type Resolver interface {
	Resolve(name string) (Func, error)
}

// Registry maps stable names to entry functions. Registration usually
// happens from package init functions, so it is guarded.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Func)}
}

// Register adds fn under name.
func (r *Registry) Register(name string, fn Func) error {
	if fn == nil {
		return ErrNilEntryPoint
	}
	if err := ValidateName(name); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[name]; ok {
		return fmt.Errorf("%w: %s", ErrEntryPointExists, name)
	}
	r.items[name] = fn
	return nil
}

func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Resolve returns the function registered under name.
func (r *Registry) Resolve(name string) (Func, error) {
	r.mu.RLock()
	fn, ok := r.items[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return fn, nil
}

// Names returns registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateName checks the dotted-identifier shape, e.g. "com.example.Main".
func ValidateName(name string) error {
	if !isValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	lastDot := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		isAlpha := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		isDigit := c >= '0' && c <= '9'
		isSym := c == '_' || c == '-' || c == '$'
		isDot := c == '.'
		if !(isAlpha || isDigit || isSym || isDot) {
			return false
		}
		if isDot && (i == 0 || i == len(name)-1 || lastDot) {
			return false
		}
		lastDot = isDot
	}
	return true
}
