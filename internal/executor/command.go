package executor

import (
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/harrison/findfiles/internal/finder"
)

// Logger receives per-command diagnostics. The internal/logger
// implementations satisfy this interface.
type Logger interface {
	LogDebug(message string)
	LogError(message string)
}

// Result reports the outcome of running the command for one record.
type Result struct {
	Path     string // File the command was rendered for
	Command  string // Rendered command line
	Launched bool   // Whether the process could be started (always true for dry runs)
	ExitCode int    // Observed child exit code; informational only
}

// Runner expands a command template per matched file and runs the results
// synchronously, one file at a time.
type Runner struct {
	Template *Template
	DryRun   bool   // Print rendered commands instead of spawning
	Verbose  bool   // In dry-run mode, pair each command with its source path
	Shell    string // Shell used to run command lines; defaults to /bin/sh
	Out      io.Writer
	ErrOut   io.Writer
	Log      Logger
}

// Run processes every record in order. In dry-run mode the rendered command
// is printed and reported successful without spawning anything. In live
// mode the command line is handed to the shell and awaited; a command
// counts as failed only when the process cannot be launched — the child's
// exit code is recorded on the Result but does not fail the file.
//
// Launch failures are non-fatal per file; the returned error is a *RunError
// aggregating them when at least one occurred.
func (r *Runner) Run(records []finder.FileRecord) ([]Result, error) {
	results := make([]Result, 0, len(records))
	runErr := &RunError{Total: len(records)}

	for _, record := range records {
		rendered := r.Template.Render(record)

		if r.DryRun {
			if r.Verbose {
				fmt.Fprintf(r.Out, "%s: %s\n", record.Path, rendered)
			} else {
				fmt.Fprintln(r.Out, rendered)
			}
			results = append(results, Result{Path: record.Path, Command: rendered, Launched: true})
			continue
		}

		result, err := r.runOne(record.Path, rendered)
		results = append(results, result)
		if err != nil {
			var launchErr *LaunchError
			if errors.As(err, &launchErr) {
				runErr.Add(launchErr)
			}
			if r.Log != nil {
				r.Log.LogError(err.Error())
			}
			if r.ErrOut != nil {
				fmt.Fprintf(r.ErrOut, "%v\n", err)
			}
		}
	}

	if len(runErr.Failures) > 0 {
		return results, runErr
	}
	return results, nil
}

// runOne spawns the rendered command line and waits for it to finish.
func (r *Runner) runOne(path, rendered string) (Result, error) {
	shell := r.Shell
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell, "-c", rendered)
	cmd.Stdout = r.Out
	cmd.Stderr = r.ErrOut

	if err := cmd.Start(); err != nil {
		return Result{Path: path, Command: rendered},
			&LaunchError{Path: path, Command: rendered, Err: err}
	}

	exitCode := 0
	if err := cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
	}
	if exitCode != 0 && r.Log != nil {
		r.Log.LogDebug(fmt.Sprintf("command for %s exited with code %d", path, exitCode))
	}

	// Launched and awaited; the exit code is recorded but does not mark
	// the file as failed.
	return Result{Path: path, Command: rendered, Launched: true, ExitCode: exitCode}, nil
}
