package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	appWork "github.com/artfolio/artfolio/pkg/app/work"
	"github.com/artfolio/artfolio/pkg/domain/detection"
	"github.com/artfolio/artfolio/pkg/domain/work"
)

type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, input appWork.PublishInput) (*work.Work, *detection.Result, error) {
	args := m.Called(ctx, input)
	entity, _ := args.Get(0).(*work.Work)
	result, _ := args.Get(1).(*detection.Result)
	return entity, result, args.Error(2)
}
