package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"speakfile/internal/speech"
)

// setupTestEnv runs the test in an empty working directory with no user
// config and returns that directory.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(viper.Reset)
	return dir
}

func runCmd(t *testing.T, engine speech.Engine, args ...string) (string, string, int) {
	t.Helper()
	a := New()
	a.NewEngine = func(speech.Config) (speech.Engine, error) { return engine, nil }

	var stdout, stderr bytes.Buffer
	code := a.Run(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), code
}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunNoInputPrintsHelp(t *testing.T) {
	setupTestEnv(t)
	engine := speech.NewMockEngine()

	stdout, _, code := runCmd(t, engine)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	for _, want := range []string{"Usage:", "shimmer", "flac", "Examples:"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help missing %q:\n%s", want, stdout)
		}
	}
	if len(engine.Requests()) != 0 {
		t.Fatal("no conversion may run without input")
	}
}

func TestRunEndToEnd(t *testing.T) {
	dir := setupTestEnv(t)
	writeInput(t, dir, "hello.txt", "Hi there")
	engine := speech.NewMockEngine()

	stdout, stderr, code := runCmd(t, engine, "hello.txt", "--voice", "echo", "-f", "opus")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}

	reqs := engine.Requests()
	want := speech.Options{Voice: speech.VoiceEcho, Format: speech.FormatOpus}
	if len(reqs) != 1 || reqs[0].Text != "Hi there" || reqs[0].Options != want {
		t.Fatalf("requests = %+v", reqs)
	}

	got, err := os.ReadFile(filepath.Join(dir, "output.opus"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if !bytes.Equal(got, speech.MockAudio("Hi there", want)) {
		t.Fatalf("output = %q", got)
	}
	if !strings.Contains(stdout, "Conversion complete") {
		t.Fatalf("missing completion message: %s", stdout)
	}
}

func TestRunInfersFormatFromOutput(t *testing.T) {
	dir := setupTestEnv(t)
	writeInput(t, dir, "book.txt", "Chapter one")
	engine := speech.NewMockEngine()

	_, stderr, code := runCmd(t, engine, "book.txt", "book.aac")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if opts := engine.Requests()[0].Options; opts != (speech.Options{Voice: speech.VoiceOnyx, Format: speech.FormatAAC}) {
		t.Fatalf("options = %+v", opts)
	}
	if _, err := os.Stat(filepath.Join(dir, "book.aac")); err != nil {
		t.Fatalf("book.aac not written: %v", err)
	}
}

func TestRunDoesNotOverwrite(t *testing.T) {
	dir := setupTestEnv(t)
	writeInput(t, dir, "in.txt", "text")
	writeInput(t, dir, "output.mp3", "old")
	engine := speech.NewMockEngine()

	if _, stderr, code := runCmd(t, engine, "in.txt"); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	old, _ := os.ReadFile(filepath.Join(dir, "output.mp3"))
	if string(old) != "old" {
		t.Fatal("existing output was overwritten")
	}
	if _, err := os.Stat(filepath.Join(dir, "output-1.mp3")); err != nil {
		t.Fatalf("output-1.mp3 not written: %v", err)
	}
}

func TestRunInvalidOptionsWarn(t *testing.T) {
	dir := setupTestEnv(t)
	writeInput(t, dir, "in.txt", "text")
	engine := speech.NewMockEngine()

	_, stderr, code := runCmd(t, engine, "in.txt", "--voice", "robot", "--format", "ogg")
	if code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr, "invalid voice") || !strings.Contains(stderr, "invalid format") {
		t.Fatalf("expected warnings on stderr, got: %s", stderr)
	}
	if opts := engine.Requests()[0].Options; opts != (speech.Options{Voice: speech.DefaultVoice, Format: speech.DefaultFormat}) {
		t.Fatalf("options = %+v", opts)
	}
}

func TestRunMissingInputFile(t *testing.T) {
	setupTestEnv(t)
	engine := speech.NewMockEngine()

	_, stderr, code := runCmd(t, engine, "ghost.txt")
	if code == 0 {
		t.Fatal("expected non-zero exit")
	}
	if !strings.Contains(stderr, "file not found") {
		t.Fatalf("expected 'file not found', got: %s", stderr)
	}
	if len(engine.Requests()) != 0 {
		t.Fatal("engine must not be called")
	}
}

func TestRunEmptyInputFile(t *testing.T) {
	dir := setupTestEnv(t)
	writeInput(t, dir, "empty.txt", "")
	engine := speech.NewMockEngine()

	_, stderr, code := runCmd(t, engine, "empty.txt")
	if code == 0 {
		t.Fatal("expected non-zero exit")
	}
	if !strings.Contains(stderr, "file is empty") {
		t.Fatalf("expected 'file is empty', got: %s", stderr)
	}
	if len(engine.Requests()) != 0 {
		t.Fatal("engine must not be called")
	}
}

func TestRunConfiguredDefaults(t *testing.T) {
	dir := setupTestEnv(t)
	writeInput(t, dir, "in.txt", "text")
	writeInput(t, dir, "speakfile.yaml", "voice: sage\nformat: flac\noutput: speech\n")
	engine := speech.NewMockEngine()

	if _, stderr, code := runCmd(t, engine, "in.txt"); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr)
	}
	if opts := engine.Requests()[0].Options; opts != (speech.Options{Voice: speech.VoiceSage, Format: speech.FormatFLAC}) {
		t.Fatalf("options = %+v", opts)
	}
	if _, err := os.Stat(filepath.Join(dir, "speech.flac")); err != nil {
		t.Fatalf("speech.flac not written: %v", err)
	}
}
