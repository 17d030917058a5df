package llm

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client using testify/mock.
type MockClient struct {
	mock.Mock
}

func (m *MockClient) Complete(ctx context.Context, systemPrompt, userPrompt string, userLimit int) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt, userLimit)
	return args.String(0), args.Error(1)
}
