package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"filecms/internal/model"
	"filecms/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context) ([]model.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Document), args.Error(1)
}

func (m *MockDocumentService) View(ctx context.Context, name string) (*service.DocumentContent, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentContent), args.Error(1)
}

func (m *MockDocumentService) Raw(ctx context.Context, name string) ([]byte, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentService) Create(ctx context.Context, rawName string) (string, error) {
	args := m.Called(ctx, rawName)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) Save(ctx context.Context, name string, content []byte) error {
	args := m.Called(ctx, name, content)
	return args.Error(0)
}

func (m *MockDocumentService) Rename(ctx context.Context, name, rawNewName string) (string, error) {
	args := m.Called(ctx, name, rawNewName)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) Duplicate(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockDocumentService) Upload(ctx context.Context, r io.Reader, filename string, size int64) (string, error) {
	args := m.Called(ctx, r, filename, size)
	return args.String(0), args.Error(1)
}
