package database

var (
	cmdMap = make(map[string]*command)
)

type command struct {
	executor ExecFunc
	arity    int
}

// RegisterCommand 注册一条命令，arity 为包含 verb 在内的参数个数
func RegisterCommand(name string, executor ExecFunc, arity int) {
	cmdMap[name] = &command{
		executor: executor,
		arity:    arity,
	}
}
