package mocks

import (
	"context"

	"github.com/Behyna/common/pkg/mq"
	"github.com/stretchr/testify/mock"
)

// Consumer delivers each queued body to the handler synchronously.
type Consumer struct {
	mock.Mock
	Bodies [][]byte
	Errors []error
}

func (m *Consumer) Consume(ctx context.Context, prefetch int, queue string, handler mq.Handle) error {
	args := m.Called(ctx, prefetch, queue)

	for _, body := range m.Bodies {
		m.Errors = append(m.Errors, handler(ctx, body))
	}

	return args.Error(0)
}
