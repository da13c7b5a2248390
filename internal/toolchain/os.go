package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// OSInitializer implements Initializer by invoking npm and tsc.
type OSInitializer struct {
	npm string
	tsc string
}

// NewOSInitializer creates an OSInitializer. Empty binaries default to "npm" and "tsc".
func NewOSInitializer(npmBin, tscBin string) *OSInitializer {
	if npmBin == "" {
		npmBin = "npm"
	}
	if tscBin == "" {
		tscBin = "tsc"
	}
	return &OSInitializer{npm: npmBin, tsc: tscBin}
}

// InitManifest runs `npm init -y` in dir
func (i *OSInitializer) InitManifest(ctx context.Context, dir string) error {
	return i.run(ctx, dir, i.npm, "init", "-y")
}

// InitCompilerConfig runs `tsc --init` in dir
func (i *OSInitializer) InitCompilerConfig(ctx context.Context, dir string) error {
	return i.run(ctx, dir, i.tsc, "--init")
}

func (i *OSInitializer) run(ctx context.Context, dir, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		invocation := strings.Join(append([]string{bin}, args...), " ")
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg != "" {
			return fmt.Errorf("%s failed in %s: %w: %s", invocation, dir, err, errMsg)
		}
		return fmt.Errorf("%s failed in %s: %w", invocation, dir, err)
	}

	return nil
}
