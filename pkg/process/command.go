// Package process runs overlay sessions in a child process and reports how
// they ended.
package process

import (
	"errors"
	"os"
	"os/exec"
)

// Command is a started-once child process.
type Command interface {
	Start() error
	Wait() error
	Signal(sig os.Signal) error
	Kill() error
	// ExitCode is valid after Wait returns; -1 means killed by a signal.
	ExitCode() int
}

// CommandFactory builds a Command for the given program and arguments.
type CommandFactory func(name string, args, env []string) Command

type execCommand struct {
	cmd *exec.Cmd
}

// NewExecCommand creates a Command backed by os/exec. The child shares the
// parent's stdout and stderr so its log output lands in the same place.
func NewExecCommand(name string, args, env []string) Command {
	cmd := exec.Command(name, args...)
	cmd.Env = env
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return &execCommand{cmd: cmd}
}

func (c *execCommand) Start() error {
	return c.cmd.Start()
}

func (c *execCommand) Wait() error {
	err := c.cmd.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Non-zero status is reported through ExitCode.
		return nil
	}
	return err
}

func (c *execCommand) Signal(sig os.Signal) error {
	if c.cmd.Process == nil {
		return os.ErrProcessDone
	}
	return c.cmd.Process.Signal(sig)
}

func (c *execCommand) Kill() error {
	if c.cmd.Process == nil {
		return os.ErrProcessDone
	}
	return c.cmd.Process.Kill()
}

func (c *execCommand) ExitCode() int {
	if c.cmd.ProcessState == nil {
		return -1
	}
	return c.cmd.ProcessState.ExitCode()
}
