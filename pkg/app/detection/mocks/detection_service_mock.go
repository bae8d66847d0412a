package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/artfolio/artfolio/pkg/domain/detection"
)

type Service struct {
	mock.Mock
}

func (m *Service) Detect(
	ctx context.Context,
	contentType detection.ContentType,
	content interface{},
	filename string,
) (*detection.Result, error) {
	args := m.Called(ctx, contentType, content, filename)
	result, _ := args.Get(0).(*detection.Result)
	return result, args.Error(1)
}

func (m *Service) DetectText(ctx context.Context, text string) (*detection.Result, error) {
	args := m.Called(ctx, text)
	result, _ := args.Get(0).(*detection.Result)
	return result, args.Error(1)
}

func (m *Service) DetectImage(ctx context.Context, imageBytes []byte, filename string) (*detection.Result, error) {
	args := m.Called(ctx, imageBytes, filename)
	result, _ := args.Get(0).(*detection.Result)
	return result, args.Error(1)
}
