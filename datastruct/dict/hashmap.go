package dict

import "kvmap/datastruct/vtype"

// Consumer 遍历时对每个 entry 调用，返回 false 时停止遍历
type Consumer func(key, val *vtype.Value) bool

// HashMap 以 vtype.Value 为键和值，并持有它们的所有权
type HashMap interface {
	Size() int
	Set(key, val *vtype.Value)
	Get(key *vtype.Value) (val *vtype.Value, ok bool)
	Remove(key *vtype.Value) (ok bool)
	ForEach(c Consumer)
	Free()
}
