// Package maven provides the build-tool abstraction for the branch
// workflows: reading and rewriting the project version and running goals
// through the mvn CLI.
package maven

import (
	"bytes"
	"errors"
	"os/exec"
	"strings"
)

// Runner is the build-tool half of the workflow's external command surface.
type Runner interface {
	// CurrentVersion returns the project version string.
	CurrentVersion() (string, error)

	// SetVersions rewrites the project version in every module.
	SetVersions(version string) error

	// RunGoals runs a whitespace-separated goal string.
	RunGoals(goals string) error

	// CleanTest runs a clean build with tests.
	CleanTest() error

	// CleanInstall runs a clean build and installs the artifacts locally.
	CleanInstall() error
}

// CommandError wraps a failed mvn invocation with the raw diagnostic output
// the tool produced.
type CommandError struct {
	Args   []string // mvn arguments that were run
	Output string   // combined stdout/stderr
	Err    error    // underlying error
}

func (e *CommandError) Error() string {
	if e.Output != "" {
		return "mvn " + strings.Join(e.Args, " ") + ": " + lastLines(e.Output, 5)
	}
	return "mvn " + strings.Join(e.Args, " ") + ": " + e.Err.Error()
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// lastLines keeps the tail of a build log, where Maven prints its error
// summary.
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// Compile-time check that CLI implements Runner.
var _ Runner = (*CLI)(nil)

// CLI runs Maven through the mvn executable in a fixed working directory.
type CLI struct {
	workDir string
}

// NewCLI returns a Runner invoking mvn in workDir.
func NewCLI(workDir string) *CLI {
	return &CLI{workDir: workDir}
}

func (c *CLI) CurrentVersion() (string, error) {
	out, err := c.run("-q", "-DforceStdout", "help:evaluate", "-Dexpression=project.version")
	if err != nil {
		return "", err
	}

	// With -q the expression value is the only output, but plugins and
	// extensions can still write lines; the value is the last one.
	lines := strings.Split(strings.TrimSpace(out), "\n")
	version := strings.TrimSpace(lines[len(lines)-1])
	if version == "" || version == "null object or invalid expression" {
		return "", errors.New("could not read project version from mvn help:evaluate")
	}
	return version, nil
}

func (c *CLI) SetVersions(version string) error {
	_, err := c.run("versions:set", "-DnewVersion="+version, "-DgenerateBackupPoms=false")
	return err
}

func (c *CLI) RunGoals(goals string) error {
	args := strings.Fields(goals)
	if len(args) == 0 {
		return nil
	}
	_, err := c.run(args...)
	return err
}

func (c *CLI) CleanTest() error {
	_, err := c.run("clean", "test")
	return err
}

func (c *CLI) CleanInstall() error {
	_, err := c.run("clean", "install")
	return err
}

func (c *CLI) run(args ...string) (string, error) {
	cmd := exec.Command("mvn", append([]string{"--batch-mode"}, args...)...)
	cmd.Dir = c.workDir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return "", &CommandError{Args: args, Output: out.String(), Err: err}
	}

	return out.String(), nil
}
