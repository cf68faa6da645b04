// Package app wires argument parsing, option resolution and conversion into
// the speakfile command.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"speakfile/internal/audio"
	"speakfile/internal/cli/args"
	"speakfile/internal/cli/scheme/colours"
	"speakfile/internal/config"
	"speakfile/internal/convert"
	"speakfile/internal/speech"
)

// errUsage marks a run that only printed help.
var errUsage = errors.New("input file is required")

// App holds what a run depends on. NewEngine is swapped out in tests.
type App struct {
	NewEngine func(speech.Config) (speech.Engine, error)
	Log       *logrus.Logger
}

func New() *App {
	return &App{
		NewEngine: speech.NewEngine,
		Log:       logrus.New(),
	}
}

// Run executes the command with argv (program name excluded) and returns
// the process exit code.
func (a *App) Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	a.Log.SetOutput(stderr)

	cmd := a.Command()
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errUsage) {
			colours.Error.Fprintf(stderr, "❌ Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// Command builds the root cobra command.
func (a *App) Command() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "speakfile <inputFile> [outputFile]",
		Short: "🔊 Turn a text file into speech audio",
		Long: `speakfile reads a text file, sends it to a text-to-speech service and
writes the audio next to it. Existing files are never overwritten: a numeric
suffix (-1, -2, ...) is added to the output name instead.

The output format comes from --format, else from the output file extension,
else mp3. outputFile defaults to "output" plus the format extension.

Valid voices:  ` + joinValues(speech.Voices()) + `
Valid formats: ` + joinValues(speech.Formats()) + `

The OpenAI engine reads its API key from OPENAI_API_KEY (a .env file works too).`,
		Example: `  speakfile chapter1.txt chapter1.aac --voice nova
  speakfile notes.txt -f opus`,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(cmd *cobra.Command, positional []string) error {
			if err := config.Load(configPath); err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if len(positional) == 0 {
				_ = cmd.Help()
				return errUsage
			}
			return a.convert(cmd, args.FromFlagSet(cmd.Flags(), positional))
		},
	}

	args.Register(cmd.Flags())
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default $HOME/.speakfile/speakfile.yaml)")
	cmd.Flags().String(config.KeyEngine, "", "speech engine: "+joinValues(speech.EngineTypes()))
	_ = viper.BindPFlag(config.KeyEngine, cmd.Flags().Lookup(config.KeyEngine))

	return cmd
}

func (a *App) convert(cmd *cobra.Command, parsed args.Args) error {
	input := parsed.Positional(0)
	proposed := parsed.Positional(1)
	if proposed == "" {
		proposed = viper.GetString(config.KeyOutput)
	}

	resolver := speech.NewResolver(a.Log, viper.GetString(config.KeyVoice), viper.GetString(config.KeyFormat))
	opts := resolver.Options(parsed, proposed)

	output, err := audio.ResolvePath(proposed, opts.Format)
	if err != nil {
		return err
	}

	engine, err := a.NewEngine(engineConfig())
	if err != nil {
		return err
	}
	if closer, ok := engine.(io.Closer); ok {
		defer closer.Close()
	}

	converter := &convert.Converter{
		Engine: engine,
		Store:  audio.NewFileStore(),
		Log:    a.Log,
		Out:    cmd.OutOrStdout(),
	}
	if _, err := converter.Convert(cmd.Context(), input, output, opts); err != nil {
		return err
	}

	colours.Success.Fprintln(cmd.OutOrStdout(), "✅ Conversion complete!")
	return nil
}

func engineConfig() speech.Config {
	return speech.Config{
		Type: viper.GetString(config.KeyEngine),
		OpenAI: speech.OpenAIConfig{
			APIKey:  viper.GetString(config.KeyOpenAIKey),
			Model:   viper.GetString(config.KeyOpenAIModel),
			BaseURL: viper.GetString(config.KeyOpenAIBaseURL),
		},
		Google: speech.GoogleConfig{
			Voice:           viper.GetString(config.KeyGoogleVoice),
			Voices:          viper.GetStringMapString(config.KeyGoogleVoices),
			LanguageCode:    viper.GetString(config.KeyGoogleLang),
			CredentialsFile: viper.GetString(config.KeyGoogleCreds),
		},
		ESpeak: speech.ESpeakConfig{
			Voice: viper.GetString(config.KeyESpeakVoice),
			Speed: viper.GetFloat64(config.KeyESpeakSpeed),
		},
	}
}

func joinValues[T fmt.Stringer](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.String()
	}
	return strings.Join(s, ", ")
}
