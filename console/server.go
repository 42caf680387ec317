package console

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"kvmap/interface/cli"
	"kvmap/lib/logger"
)

// Serve 运行一次会话，会话结束后关闭 hr
func Serve(ctx context.Context, in io.Reader, out io.Writer, hr cli.Handler) error {
	defer func() {
		_ = hr.Close()
	}()
	logger.Info("Session started.")
	return hr.Handle(ctx, in, out)
}

// IsTerminal 判断 f 是否连接到终端，决定是否输出 prompt
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
