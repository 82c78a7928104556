package queue_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Behyna/common/pkg/mq"
	"github.com/Behyna/payout-services/internal/queue"
	"github.com/stretchr/testify/assert"
)

func TestIsTemporary(t *testing.T) {
	base := errors.New("lost connection")

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"plain error", base, false},
		{"temporary error", mq.Temporary(base), true},
		{"wrapped temporary error", fmt.Errorf("execute batch: %w", mq.Temporary(base)), true},
		{"temporary cancellation", mq.Temporary(context.Canceled), true},
		{"bare cancellation", context.Canceled, false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, queue.IsTemporary(tt.err))
		})
	}
}
