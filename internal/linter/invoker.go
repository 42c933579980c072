// SPDX-License-Identifier: AGPL-3.0-or-later

package linter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Invoker runs a lint operation and returns the raw response text.
type Invoker interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// ProcessInvoker runs the linter domain as a child process per request.
// The request is written to stdin and the response is read from stdout.
type ProcessInvoker struct {
	Command []string
	// Dir is the working directory of the process, usually the project root.
	Dir string
}

// NewProcessInvoker returns an invoker for command, run from dir.
func NewProcessInvoker(command []string, dir string) *ProcessInvoker {
	return &ProcessInvoker{Command: command, Dir: dir}
}

func (p *ProcessInvoker) Invoke(ctx context.Context, req Request) (string, error) {
	if len(p.Command) == 0 {
		return "", errors.New("linter command is empty")
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding %s request: %w", req.Operation, err)
	}

	name := p.Command[0]
	cmd := exec.CommandContext(ctx, name, p.Command[1:]...)
	cmd.Dir = p.Dir
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = exitErr.Error()
			}
			return "", fmt.Errorf("%s %s exited with code %d: %s", name, req.Operation, exitErr.ExitCode(), msg)
		}
		return "", fmt.Errorf("running %s: %w", name, err)
	}

	return stdout.String(), nil
}
