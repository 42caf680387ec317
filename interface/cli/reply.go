package cli

// Reply 是对一条命令的回复的抽象，GetBytes 返回写到标准输出的内容
type Reply interface {
	GetBytes() []byte
}

// ErrorReply 是用于表示错误信息的 Reply
type ErrorReply interface {
	GetBytes() []byte
	Error() string
}
