package database

import (
	"kvmap/datastruct/dict"
	"kvmap/interface/cli"
	"kvmap/lib/logger"
	"kvmap/shell/protocol"
)

type ExecFunc func(db *DB, args [][]byte) cli.Reply

// DB 把解析好的命令应用到一个 dict.HashMap 上
type DB struct {
	m dict.HashMap
}

func NewDB(capacity int) *DB {
	return &DB{
		m: dict.NewChainedHashMap(capacity),
	}
}

func (db *DB) Execute(line cli.Line) cli.Reply {
	if len(line) == 0 {
		return protocol.InvalidCommandErrorReply(nil)
	}
	cmdName := line.CommandName()
	cmd, ok := cmdMap[string(cmdName)]
	if !ok {
		return protocol.UnknownCommandErrorReply(cmdName)
	}
	if len(line) != cmd.arity {
		return protocol.ArgumentCountErrorReply(cmdName)
	}
	reply := cmd.executor(db, line.CommandContent())
	if protocol.CheckErrorReply(reply) {
		logger.Debugf("%s: %s", cmdName, reply.(cli.ErrorReply).Error())
	}
	return reply
}

func (db *DB) Size() int {
	return db.m.Size()
}

// Close 释放 map 中所有的 key 和 val
func (db *DB) Close() {
	db.m.Free()
}
