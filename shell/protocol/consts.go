package protocol

import (
	"strconv"

	"kvmap/datastruct/vtype"
	"kvmap/interface/cli"
)

type (
	emptyReply struct{}
	quitReply  struct{}
	intReply   struct{ code int64 }
	valueReply struct{ rendered []byte }
)

func CheckErrorReply(r cli.Reply) bool {
	_, ok := r.(cli.ErrorReply)
	return ok
}

func CheckQuitReply(r cli.Reply) bool {
	_, ok := r.(*quitReply)
	return ok
}

func (r *emptyReply) GetBytes() []byte {
	return make([]byte, 0)
}

func (r *quitReply) GetBytes() []byte {
	return make([]byte, 0)
}

func (r *intReply) GetBytes() []byte {
	return append(strconv.AppendInt(nil, r.code, 10), '\n')
}

func (r *valueReply) GetBytes() []byte {
	return r.rendered
}

// EmptyReply 不产生任何输出
func EmptyReply() cli.Reply {
	return &emptyReply{}
}

// QuitReply 通知会话结束
func QuitReply() cli.Reply {
	return &quitReply{}
}

func IntReply(code int64) cli.Reply {
	return &intReply{code: code}
}

// ValueReply 立即渲染 v，因此 v 只需在调用期间有效
func ValueReply(v *vtype.Value) cli.Reply {
	data := v.GetBytes()
	rendered := make([]byte, len(data), len(data)+1)
	copy(rendered, data)
	return &valueReply{rendered: append(rendered, '\n')}
}

func FetchCode(r cli.Reply) (code int64, ok bool) {
	ir, ok := r.(*intReply)
	if !ok {
		return 0, false
	}
	return ir.code, true
}
