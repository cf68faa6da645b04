package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// OpenAIEngine calls the OpenAI audio/speech endpoint.
type OpenAIEngine struct {
	client openai.Client
	model  openai.SpeechModel
}

// NewOpenAIEngine never fails: a missing API key surfaces as an error from
// the first Synthesize call.
func NewOpenAIEngine(c OpenAIConfig) *OpenAIEngine {
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if c.APIKey != "" {
		opts = append(opts, option.WithAPIKey(c.APIKey))
	}
	if c.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(c.BaseURL))
	}
	model := openai.SpeechModel(c.Model)
	if model == "" {
		model = openai.SpeechModelTTS1
	}
	return &OpenAIEngine{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

func (e *OpenAIEngine) Name() string { return EngineTypeOpenAI.String() }

func (e *OpenAIEngine) Synthesize(ctx context.Context, text string, opts Options) ([]byte, error) {
	resp, err := e.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          e.model,
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(opts.Voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormat(opts.Format),
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read openai audio: %w", err)
	}
	return data, nil
}
