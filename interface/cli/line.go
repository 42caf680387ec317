package cli

// Line 是一条被切分好的命令，第 0 项为 verb，其余为字面量
type Line [][]byte

func (l Line) CommandName() []byte {
	return l[0]
}

func (l Line) CommandContent() [][]byte {
	return l[1:]
}
