package llm

import "context"

// MockGenerator is a configurable mock for testing the fallback chain.
// Set the function field to control behavior; the zero value is an
// available generator that returns an empty completion.
type MockGenerator struct {
	// GenerateFunc is called when Generate is invoked. If nil, returns
	// "" and nil error.
	GenerateFunc func(ctx context.Context, prompt string, systemMessage string) (string, error)

	// Unavailable makes Available report false.
	Unavailable bool

	// ModelName is returned by Model. Defaults to "mock-model".
	ModelName string

	// GenerateCalls counts Generate invocations for verification.
	GenerateCalls int
}

// Available implements Generator.
func (m *MockGenerator) Available() bool { return !m.Unavailable }

// Model implements Generator.
func (m *MockGenerator) Model() string {
	if m.ModelName == "" {
		return "mock-model"
	}
	return m.ModelName
}

// Generate implements Generator.
func (m *MockGenerator) Generate(ctx context.Context, prompt string, systemMessage string) (string, error) {
	m.GenerateCalls++
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt, systemMessage)
	}
	return "", nil
}

var _ Generator = (*MockGenerator)(nil)
