package vtype

import (
	"io"
	"strconv"

	"kvmap/lib/utils"
)

// Kind 标识 Value 实际承载的变体
type Kind uint8

const (
	IntegerKind Kind = iota + 1
	TextKind
)

func (k Kind) String() string {
	switch k {
	case IntegerKind:
		return "Integer"
	case TextKind:
		return "Text"
	}
	return "Unknown"
}

// Value 是 Integer 与 Text 的统一抽象，map 只通过 Print/Equals/Hash/Destroy 访问它
type Value struct {
	kind    Kind
	integer int32
	text    []byte
	dead    bool
}

// MakeInteger 创建一个 Integer
func MakeInteger(i int32) *Value {
	return &Value{kind: IntegerKind, integer: i}
}

// MakeText 创建一个 Text，Text 持有 s 的副本
func MakeText(s []byte) *Value {
	data := make([]byte, len(s))
	copy(data, s)
	return &Value{kind: TextKind, text: data}
}

func MakeTextString(s string) *Value {
	return &Value{kind: TextKind, text: []byte(s)}
}

func (v *Value) Kind() Kind {
	v.mustAlive()
	return v.kind
}

// Alive 在 Destroy 之前返回 true
func (v *Value) Alive() bool {
	return v != nil && !v.dead
}

// Print 将 Value 的文本形式写入 w，不追加换行
func (v *Value) Print(w io.Writer) {
	_, _ = w.Write(v.GetBytes())
}

func (v *Value) GetBytes() []byte {
	v.mustAlive()
	switch v.kind {
	case IntegerKind:
		return strconv.AppendInt(nil, int64(v.integer), 10)
	case TextKind:
		return v.text
	}
	panic("Unknown value kind")
}

func (v *Value) String() string {
	return string(v.GetBytes())
}

// Equals 要求两者变体相同且内容相同，Integer 与 Text 永不相等
func (v *Value) Equals(o *Value) bool {
	v.mustAlive()
	if o == nil {
		return false
	}
	o.mustAlive()
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case IntegerKind:
		return v.integer == o.integer
	case TextKind:
		return utils.BytesEqual(v.text, o.text)
	}
	return false
}

// Hash 对 Integer 直接取其无符号解释，负数会溢出为很大的正数；对 Text 使用 djb2
func (v *Value) Hash() uint32 {
	v.mustAlive()
	switch v.kind {
	case IntegerKind:
		return uint32(v.integer)
	case TextKind:
		return djb2(v.text)
	}
	panic("Unknown value kind")
}

// Destroy 释放 Value 持有的数据，同一个 Value 只能被释放一次
func (v *Value) Destroy() {
	if v == nil {
		return
	}
	if v.dead {
		panic("Value destroyed twice")
	}
	v.dead = true
	v.text = nil
	v.integer = 0
}

// Copy 返回一个独立的副本，调用方需要保存借用到的 Value 时使用
func (v *Value) Copy() *Value {
	v.mustAlive()
	if v.kind == TextKind {
		return MakeText(v.text)
	}
	return MakeInteger(v.integer)
}

// Len 返回打印形式的字节数
func (v *Value) Len() int {
	v.mustAlive()
	if v.kind == TextKind {
		return len(v.text)
	}
	return len(v.GetBytes())
}

// CharAt 返回打印形式中下标 i 处的字节，越界时返回 0
func (v *Value) CharAt(i int) byte {
	data := v.GetBytes()
	if i < 0 || i >= len(data) {
		return 0
	}
	return data[i]
}

func (v *Value) mustAlive() {
	if v == nil {
		panic("Nil Value")
	}
	if v.dead {
		panic("Value used after destroy")
	}
}
