// Package builtin registers the entry points compiled into the launcher
// binary itself.
package builtin

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danmuck/launchwrap/internal/entrypoint"
	"github.com/danmuck/launchwrap/internal/properties"
	"github.com/danmuck/launchwrap/internal/tools"
)

const (
	EchoName = "launchwrap.echo"
	ExecName = "launchwrap.exec"
)

var ErrMissingProgram = errors.New("builtin: exec requires a program argument")

// Builtins binds the built-in entry points to their host resources.
type Builtins struct {
	Stdio   tools.Stdio
	Runner  tools.CommandRunner
	Environ func() []string
}

func Default() Builtins {
	return Builtins{
		Stdio:   tools.Stdio{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr},
		Runner:  tools.ExecRunner{},
		Environ: os.Environ,
	}
}

func (b Builtins) Register(r *entrypoint.Registry) error {
	if err := r.Register(EchoName, b.Echo); err != nil {
		return err
	}
	return r.Register(ExecName, b.Exec)
}

// Echo prints every property and argument, one per line.
func (b Builtins) Echo(props properties.View, args []string) error {
	out := b.Stdio.Stdout
	if out == nil {
		out = io.Discard
	}
	for _, key := range props.Keys() {
		v, _ := props.Get(key)
		if _, err := fmt.Fprintf(out, "property %s=%s\n", key, v); err != nil {
			return err
		}
	}
	for i, arg := range args {
		if _, err := fmt.Fprintf(out, "arg[%d] %s\n", i, arg); err != nil {
			return err
		}
	}
	return nil
}

// Exec runs args[0] with args[1:]. Properties are appended to the inherited
// environment using properties.EnvName. A non-zero exit surfaces as an
// *entrypoint.ExitError.
func (b Builtins) Exec(props properties.View, args []string) error {
	if len(args) == 0 {
		return ErrMissingProgram
	}
	var env []string
	if b.Environ != nil {
		env = b.Environ()
	}
	for _, key := range props.Keys() {
		v, _ := props.Get(key)
		env = append(env, properties.EnvName("", key)+"="+v)
	}

	code, err := b.Runner.Run(args[0], args[1:], env, b.Stdio)
	if err != nil || code != 0 {
		return &entrypoint.ExitError{Code: code, Err: err}
	}
	return nil
}
