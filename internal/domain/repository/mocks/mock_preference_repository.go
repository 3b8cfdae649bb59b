package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPreferenceRepository struct {
	mock.Mock
}

func (m *MockPreferenceRepository) Get(ctx context.Context, clientID, key string) (string, bool, error) {
	args := m.Called(ctx, clientID, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *MockPreferenceRepository) Set(ctx context.Context, clientID, key, value string) error {
	args := m.Called(ctx, clientID, key, value)
	return args.Error(0)
}
