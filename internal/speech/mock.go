package speech

import (
	"context"
	"fmt"
	"sync"
)

// MockEngine returns a deterministic payload and remembers every request.
type MockEngine struct {
	mu       sync.Mutex
	requests []MockRequest

	// Err, when set, is returned by Synthesize instead of audio.
	Err error
}

type MockRequest struct {
	Text    string
	Options Options
}

func NewMockEngine() *MockEngine {
	return &MockEngine{}
}

func (m *MockEngine) Name() string { return EngineTypeMock.String() }

func (m *MockEngine) Synthesize(ctx context.Context, text string, opts Options) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, MockRequest{Text: text, Options: opts})
	if m.Err != nil {
		return nil, m.Err
	}
	return MockAudio(text, opts), nil
}

// Requests returns a copy of the calls made so far.
func (m *MockEngine) Requests() []MockRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockRequest(nil), m.requests...)
}

// MockAudio is the payload MockEngine produces for text and opts.
func MockAudio(text string, opts Options) []byte {
	return []byte(fmt.Sprintf("MOCK %s/%s:%s", opts.Voice, opts.Format, text))
}
