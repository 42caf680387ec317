package database

import (
	"kvmap/datastruct/vtype"
	"kvmap/interface/cli"
	"kvmap/shell/protocol"
)

// execSet 成功后 key 与 val 的所有权都交给 map
func execSet(db *DB, args [][]byte) cli.Reply {
	key, err := vtype.ParseLiteral(args[0])
	if err != nil {
		return protocol.InvalidCommandErrorReply(err)
	}
	val, err := vtype.ParseLiteral(args[1])
	if err != nil {
		key.Destroy()
		return protocol.InvalidCommandErrorReply(err)
	}
	db.m.Set(key, val)
	return protocol.EmptyReply()
}

func execGet(db *DB, args [][]byte) cli.Reply {
	key, err := vtype.ParseLiteral(args[0])
	if err != nil {
		return protocol.InvalidCommandErrorReply(err)
	}
	defer key.Destroy()
	val, ok := db.m.Get(key)
	if !ok {
		return protocol.KeyNotFoundErrorReply()
	}
	return protocol.ValueReply(val)
}

func execRemove(db *DB, args [][]byte) cli.Reply {
	key, err := vtype.ParseLiteral(args[0])
	if err != nil {
		return protocol.InvalidCommandErrorReply(err)
	}
	defer key.Destroy()
	if !db.m.Remove(key) {
		return protocol.KeyNotFoundErrorReply()
	}
	return protocol.EmptyReply()
}

func execSize(db *DB, _ [][]byte) cli.Reply {
	return protocol.IntReply(int64(db.m.Size()))
}

func execQuit(_ *DB, _ [][]byte) cli.Reply {
	return protocol.QuitReply()
}

func init() {
	RegisterCommand("set", execSet, 3)
	RegisterCommand("get", execGet, 2)
	RegisterCommand("remove", execRemove, 2)
	RegisterCommand("size", execSize, 1)
	RegisterCommand("quit", execQuit, 1)
}
