// Local eSpeak/eSpeak-NG implementation
package speech

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

type ESpeakConfig struct {
	Voice string
	Speed float64
}

// ESpeakEngine renders WAV audio with a local eSpeak executable.
type ESpeakEngine struct {
	path   string
	config ESpeakConfig
}

func newESpeakEngine(config ESpeakConfig) (*ESpeakEngine, error) {
	espeakPath, err := findESpeakExecutable()
	if err != nil {
		return nil, fmt.Errorf("eSpeak not found: %w", err)
	}
	return &ESpeakEngine{path: espeakPath, config: config}, nil
}

func findESpeakExecutable() (string, error) {
	candidates := []string{"espeak-ng", "espeak"}

	for _, candidate := range candidates {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("eSpeak executable not found in PATH")
}

func (e *ESpeakEngine) Name() string { return EngineTypeESpeak.String() }

// Synthesize ignores opts.Voice: eSpeak voices are languages, taken from config.
func (e *ESpeakEngine) Synthesize(ctx context.Context, text string, opts Options) ([]byte, error) {
	if opts.Format != FormatWAV {
		return nil, &UnsupportedFormatError{Engine: e.Name(), Format: opts.Format}
	}

	cmd := exec.CommandContext(ctx, e.path, e.buildArgs()...)
	cmd.Stdin = strings.NewReader(text)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("eSpeak failed: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func (e *ESpeakEngine) buildArgs() []string {
	args := []string{"--stdout"}

	if e.config.Voice != "" && e.config.Voice != "default" {
		args = append(args, "-v", e.config.Voice)
	}

	// words per minute, eSpeak's default is 175
	if e.config.Speed > 0 {
		args = append(args, "-s", strconv.Itoa(int(175*e.config.Speed)))
	}

	// read text from stdin
	return append(args, "--stdin")
}
