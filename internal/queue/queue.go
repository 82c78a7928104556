package queue

import (
	"errors"

	"github.com/Behyna/common/pkg/mq"
)

// Config is the broker connection plus the consumer prefetch.
type Config struct {
	mq.Config `mapstructure:",squash"`
	Prefetch  int `mapstructure:"prefetch"`
}

// IsTemporary reports whether a handler error was marked with mq.Temporary and
// so makes the consumer requeue the delivery.
func IsTemporary(err error) bool {
	var te interface{ Temporary() bool }
	return errors.As(err, &te) && te.Temporary()
}
