package tools

import (
	"errors"
	"io"
	"os/exec"
)

// Stdio is the stream set handed to a child program.
type Stdio struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// CommandRunner abstracts program execution for entry points that wrap an
// external binary.
type CommandRunner interface {
	Run(name string, args []string, env []string, stdio Stdio) (int, error)
}

// ExecRunner executes programs on the local host, streaming stdio.
type ExecRunner struct{}

// Run returns the exit code alongside any error. A program that cannot be
// started reports 127, matching shell convention.
func (r ExecRunner) Run(name string, args []string, env []string, stdio Stdio) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Env = env
	cmd.Stdin = stdio.Stdin
	cmd.Stdout = stdio.Stdout
	cmd.Stderr = stdio.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), err
	}

	exitCode := 1
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		exitCode = 127
	}
	return exitCode, err
}
