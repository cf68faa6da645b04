package speech

import (
	"context"
	"fmt"
)

// Config selects and configures an Engine.
type Config struct {
	Type string

	OpenAI OpenAIConfig
	Google GoogleConfig
	ESpeak ESpeakConfig
}

// Engine turns text into an encoded audio payload in a single call.
type Engine interface {
	Name() string
	Synthesize(ctx context.Context, text string, opts Options) ([]byte, error)
}

type EngineType string

const (
	EngineTypeOpenAI EngineType = "openai"
	EngineTypeGoogle EngineType = "google"
	EngineTypeESpeak EngineType = "espeak"
	EngineTypeMock   EngineType = "mock"
)

func (e EngineType) String() string {
	return string(e)
}

// EngineTypes lists the engines NewEngine understands.
func EngineTypes() []EngineType {
	return []EngineType{EngineTypeOpenAI, EngineTypeGoogle, EngineTypeESpeak, EngineTypeMock}
}

// NewEngine creates the engine named by config.Type. An empty type means openai.
func NewEngine(config Config) (Engine, error) {
	switch EngineType(config.Type) {
	case EngineTypeOpenAI, "":
		return NewOpenAIEngine(config.OpenAI), nil

	case EngineTypeGoogle:
		return newGoogleEngine(context.Background(), config.Google)

	case EngineTypeESpeak:
		return newESpeakEngine(config.ESpeak)

	case EngineTypeMock:
		return NewMockEngine(), nil

	default:
		return nil, fmt.Errorf("unsupported speech engine type: %s", config.Type)
	}
}

// UnsupportedFormatError is returned by engines that cannot produce a format.
type UnsupportedFormatError struct {
	Engine string
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s engine cannot produce %s audio", e.Engine, e.Format)
}
