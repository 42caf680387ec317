package protocol

import (
	"fmt"

	"kvmap/interface/cli"
)

var (
	keyNotFoundBytes    = []byte("Key not found\n")
	invalidCommandBytes = []byte("Invalid command\n")
)

type keyNotFoundErrorReply struct{}

func (r *keyNotFoundErrorReply) GetBytes() []byte {
	return keyNotFoundBytes
}

func (r *keyNotFoundErrorReply) Error() string {
	return "Key not found"
}

func KeyNotFoundErrorReply() cli.ErrorReply {
	return &keyNotFoundErrorReply{}
}

// invalidCommandErrorReply 对用户统一输出 Invalid command，具体原因只用于日志
type invalidCommandErrorReply struct {
	reason error
}

func (r *invalidCommandErrorReply) GetBytes() []byte {
	return invalidCommandBytes
}

func (r *invalidCommandErrorReply) Error() string {
	if r.reason == nil {
		return "Invalid command"
	}
	return fmt.Sprintf("Invalid command: %v", r.reason)
}

func InvalidCommandErrorReply(reason error) cli.ErrorReply {
	return &invalidCommandErrorReply{reason: reason}
}

func ArgumentCountErrorReply(cmd []byte) cli.ErrorReply {
	return InvalidCommandErrorReply(fmt.Errorf("wrong argument count for '%s'", cmd))
}

func UnknownCommandErrorReply(cmd []byte) cli.ErrorReply {
	return InvalidCommandErrorReply(fmt.Errorf("unknown command '%s'", cmd))
}
