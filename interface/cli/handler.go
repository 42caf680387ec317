package cli

import (
	"context"
	"io"
)

// Handler 是交互会话的抽象
type Handler interface {
	Handle(ctx context.Context, in io.Reader, out io.Writer) error
	Close() error
}
