package dbinterface

import "kvmap/interface/cli"

type DB interface {
	Execute(line cli.Line) cli.Reply
	Size() int
	Close()
}
