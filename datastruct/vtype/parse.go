package vtype

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidInteger = errors.New("invalid integer literal")
	ErrInvalidText    = errors.New("invalid text literal")
	ErrTrailingBytes  = errors.New("trailing bytes after literal")
)

// ParseInteger 从 input 的第 0 个字节开始读取可选的 '-' 与至少一位十进制数字，
// 返回创建的 Integer 以及消耗的字节数
func ParseInteger(input []byte) (*Value, int, error) {
	n := 0
	if n < len(input) && input[n] == '-' {
		n++
	}
	digits := n
	for n < len(input) && isDigit(input[n]) {
		n++
	}
	if n == digits {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidInteger, input)
	}
	i, err := strconv.ParseInt(string(input[:n]), 10, 32)
	if err != nil {
		// 超出 int32 范围
		return nil, 0, fmt.Errorf("%w: %q out of range", ErrInvalidInteger, input[:n])
	}
	return MakeInteger(int32(i)), n, nil
}

// ParseText 要求 input 以 '"' 开头，读取到下一个 '"' 为止；不支持转义。
// 消耗的字节数包含两侧的引号
func ParseText(input []byte) (*Value, int, error) {
	if len(input) == 0 || input[0] != '"' {
		return nil, 0, fmt.Errorf("%w: missing opening quote", ErrInvalidText)
	}
	end := bytes.IndexByte(input[1:], '"')
	if end < 0 {
		return nil, 0, fmt.Errorf("%w: missing closing quote", ErrInvalidText)
	}
	body := input[1 : 1+end]
	if bytes.IndexByte(body, '\n') >= 0 {
		return nil, 0, fmt.Errorf("%w: newline inside quotes", ErrInvalidText)
	}
	return MakeText(body), end + 2, nil
}

// Parse 根据首字节选择 ParseText 或 ParseInteger
func Parse(input []byte) (*Value, int, error) {
	if len(input) > 0 && input[0] == '"' {
		return ParseText(input)
	}
	return ParseInteger(input)
}

// ParseLiteral 解析一个完整的字面量，token 必须被完全消耗
func ParseLiteral(token []byte) (*Value, error) {
	v, n, err := Parse(token)
	if err != nil {
		return nil, err
	}
	if n != len(token) {
		v.Destroy()
		return nil, fmt.Errorf("%w: %q", ErrTrailingBytes, token[n:])
	}
	return v, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
