// Package convert reads a text file, synthesizes it and stores the audio.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"speakfile/internal/cli/scheme/colours"
	"speakfile/internal/speech"
)

var (
	ErrInputNotFound = errors.New("file not found")
	ErrInputEmpty    = errors.New("file is empty")
)

// Store persists the synthesized payload.
type Store interface {
	Save(path string, data []byte) error
}

// Converter runs one conversion. Out receives the progress lines.
type Converter struct {
	Engine speech.Engine
	Store  Store
	Log    logrus.FieldLogger
	Out    io.Writer
}

// Result describes a finished conversion.
type Result struct {
	Path       string
	Bytes      int
	Characters int
	Elapsed    time.Duration
}

// Convert synthesizes inputPath and writes the audio to outputPath. Nothing
// is retried; the first failure is returned.
func (c *Converter) Convert(ctx context.Context, inputPath, outputPath string, opts speech.Options) (*Result, error) {
	text, err := readInput(inputPath)
	if err != nil {
		return nil, err
	}

	outPath, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path %s: %w", outputPath, err)
	}

	chars := utf8.RuneCountInString(text)
	colours.Info.Fprintf(c.out(), "🎙️  Voice: %s, %d characters\n", opts.Voice, chars)
	c.log().WithFields(logrus.Fields{
		"engine": c.Engine.Name(),
		"voice":  opts.Voice,
		"format": opts.Format,
	}).Debug("synthesizing")

	start := time.Now()
	data, err := c.Engine.Synthesize(ctx, text, opts)
	if err != nil {
		return nil, err
	}

	if err := c.Store.Save(outPath, data); err != nil {
		return nil, err
	}
	elapsed := time.Since(start)

	colours.Info.Fprintf(c.out(), "⏱️  Took %.2fs\n", elapsed.Seconds())
	colours.Success.Fprintf(c.out(), "💾 Saved to %s\n", outPath)

	return &Result{
		Path:       outPath,
		Bytes:      len(data),
		Characters: chars,
		Elapsed:    elapsed,
	}, nil
}

func readInput(inputPath string) (string, error) {
	abs, err := filepath.Abs(inputPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve input path %s: %w", inputPath, err)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, abs)
		}
		return "", fmt.Errorf("failed to read %s: %w", abs, err)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("%w: %s", ErrInputEmpty, abs)
	}
	return string(content), nil
}

func (c *Converter) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Converter) log() logrus.FieldLogger {
	if c.Log == nil {
		return logrus.StandardLogger()
	}
	return c.Log
}
