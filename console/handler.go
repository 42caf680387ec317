package console

import (
	"bufio"
	"context"
	"io"

	"kvmap/interface/cli"
	"kvmap/interface/dbinterface"
	"kvmap/lib/logger"
	"kvmap/shell/parse"
	"kvmap/shell/protocol"
)

// Handler 逐行读取命令，交给 DB 执行并写回结果
type Handler struct {
	db          dbinterface.DB
	prompt      string
	interactive bool
}

// MakeHandler 创建 Handler，interactive 为 true 时每次读取前输出 prompt
func MakeHandler(db dbinterface.DB, prompt string, interactive bool) *Handler {
	return &Handler{
		db:          db,
		prompt:      prompt,
		interactive: interactive,
	}
}

// Handle 在收到 quit 或输入结束时返回 nil，读取错误视为输入结束
func (h *Handler) Handle(ctx context.Context, in io.Reader, out io.Writer) error {
	reader := parse.NewReader(in)
	writer := bufio.NewWriter(out)
	for ctx.Err() == nil {
		if h.interactive {
			_, _ = writer.WriteString(h.prompt)
		}
		// 读取前先把已有的回复全部写出
		if err := writer.Flush(); err != nil {
			return err
		}
		payload, err := reader.ReadPayload()
		if err != nil {
			if err != io.EOF {
				logger.Warn(err)
			}
			break
		}
		reply := h.execute(payload)
		if protocol.CheckQuitReply(reply) {
			break
		}
		if _, err = writer.Write(reply.GetBytes()); err != nil {
			return err
		}
	}
	return writer.Flush()
}

func (h *Handler) execute(payload *parse.Payload) cli.Reply {
	if payload.Err != nil {
		logger.Debug(payload.Err)
		return protocol.InvalidCommandErrorReply(payload.Err)
	}
	return h.db.Execute(payload.Data)
}

func (h *Handler) Close() error {
	logger.Info("Handler shutting down...")
	h.db.Close()
	return nil
}
