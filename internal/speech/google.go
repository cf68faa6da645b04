package speech

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"google.golang.org/api/option"
)

type GoogleConfig struct {
	// Voice is the Google voice name used when Voices has no entry.
	Voice           string
	Voices          map[string]string
	LanguageCode    string
	CredentialsFile string
}

// GoogleEngine synthesizes through Google Cloud Text-to-Speech.
type GoogleEngine struct {
	client *texttospeech.Client
	config GoogleConfig
}

func newGoogleEngine(ctx context.Context, c GoogleConfig) (*GoogleEngine, error) {
	var opts []option.ClientOption
	if c.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.CredentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS client: %w", err)
	}
	return &GoogleEngine{client: client, config: c}, nil
}

func (g *GoogleEngine) Name() string { return EngineTypeGoogle.String() }

func (g *GoogleEngine) Synthesize(ctx context.Context, text string, opts Options) ([]byte, error) {
	encoding, err := googleEncoding(opts.Format)
	if err != nil {
		return nil, err
	}

	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: g.config.LanguageCode,
			Name:         g.voiceName(opts.Voice),
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: encoding,
		},
	}
	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("google speech request failed: %w", err)
	}
	return resp.AudioContent, nil
}

func (g *GoogleEngine) Close() error {
	return g.client.Close()
}

func (g *GoogleEngine) voiceName(v Voice) string {
	if name, ok := g.config.Voices[v.String()]; ok && name != "" {
		return name
	}
	return g.config.Voice
}

func googleEncoding(f Format) (texttospeechpb.AudioEncoding, error) {
	switch f {
	case FormatMP3:
		return texttospeechpb.AudioEncoding_MP3, nil
	case FormatOpus:
		return texttospeechpb.AudioEncoding_OGG_OPUS, nil
	case FormatWAV:
		// LINEAR16 responses carry a WAV header
		return texttospeechpb.AudioEncoding_LINEAR16, nil
	default:
		return texttospeechpb.AudioEncoding_AUDIO_ENCODING_UNSPECIFIED, &UnsupportedFormatError{Engine: EngineTypeGoogle.String(), Format: f}
	}
}
