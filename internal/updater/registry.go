package updater

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// VersionSource answers "what is the latest published version of the skill
// package". The production implementation shells out to npm; tests inject
// fakes.
type VersionSource interface {
	LatestVersion(ctx context.Context) (string, error)
}

// NPMRegistry queries the npm registry through the npm CLI.
type NPMRegistry struct {
	// Package is the registry name of the published skill package.
	Package string
}

// LatestVersion runs `npm view <package> version` under the caller's
// context. A missing npm binary, non-zero exit, timeout, or empty output
// all surface as errors; the caller decides how quietly to degrade.
func (r NPMRegistry) LatestVersion(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "npm", "view", r.Package, "version")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("npm view timed out: %w", ctx.Err())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("npm view failed: %s: %w", msg, err)
		}
		return "", fmt.Errorf("npm view failed: %w", err)
	}

	version := strings.TrimSpace(stdout.String())
	if version == "" {
		return "", fmt.Errorf("npm view returned no version for %s", r.Package)
	}
	return version, nil
}
