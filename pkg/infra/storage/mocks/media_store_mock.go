package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/artfolio/artfolio/pkg/infra/storage"
)

type MediaStore struct {
	mock.Mock
}

func (m *MediaStore) Upload(ctx context.Context, path, contentType string, body []byte) (string, error) {
	args := m.Called(ctx, path, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MediaStore) PresignUpload(ctx context.Context, path, contentType string) (*storage.PresignedUpload, error) {
	args := m.Called(ctx, path, contentType)
	presigned, _ := args.Get(0).(*storage.PresignedUpload)
	return presigned, args.Error(1)
}

func (m *MediaStore) Delete(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}
