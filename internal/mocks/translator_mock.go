// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/translate-service/internal/translator"
	"github.com/stretchr/testify/mock"
)

type MockTranslationService struct {
	mock.Mock
}

func NewMockTranslationService(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockTranslationService {
	m := &MockTranslationService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTranslationService) Translate(ctx context.Context, sentence string, direction bool) (translator.Result, error) {
	args := m.Called(ctx, sentence, direction)
	return args.Get(0).(translator.Result), args.Error(1)
}

type MockProvider struct {
	mock.Mock
}

func NewMockProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockProvider {
	m := &MockProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Translate(ctx context.Context, text, dest string) (string, error) {
	args := m.Called(ctx, text, dest)
	return args.String(0), args.Error(1)
}
