package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"kvmap/interface/cli"
)

var (
	ErrEmptyLine        = errors.New("empty line")
	ErrUnterminatedText = errors.New("unterminated text literal")
	ErrMalformedToken   = errors.New("malformed token")
)

// Payload 储存了解析得到的 cli.Line 或是一个 error
type Payload struct {
	Data cli.Line
	Err  error
}

// Reader 逐行读取输入，每次读取只解析一行
type Reader struct {
	reader *bufio.Reader
	err    error
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(reader)}
}

// ReadPayload 读取下一行并解析。
// 没有更多输入时返回 io.EOF；最后一行即使没有换行符也会被解析，读取错误留到下一次调用时返回
func (r *Reader) ReadPayload() (*Payload, error) {
	if r.err != nil {
		return nil, r.err
	}
	line, err := r.reader.ReadBytes('\n')
	if err != nil {
		r.err = err
		if len(line) == 0 {
			return nil, err
		}
	}
	return parseLine0(line), nil
}

// ParseBytes 解析多行输入，每一行对应一个 Payload
func ParseBytes(data []byte) []*Payload {
	var payloads []*Payload
	reader := NewReader(bytes.NewReader(data))
	for {
		p, err := reader.ReadPayload()
		if err != nil {
			return payloads
		}
		payloads = append(payloads, p)
	}
}

func parseLine0(line []byte) *Payload {
	data, err := ParseLine(line)
	return &Payload{Data: data, Err: err}
}

// ParseLine 把一行命令切分为 verb 与字面量。
// 字面量之间以空格或制表符分隔，"..." 中的空白属于字面量本身
func ParseLine(line []byte) (cli.Line, error) {
	line = trimEOL(line)
	var args cli.Line
	i, n := 0, len(line)
	for {
		for i < n && isBlank(line[i]) {
			i++
		}
		if i == n {
			break
		}
		start := i
		if line[i] == '"' {
			end := bytes.IndexByte(line[i+1:], '"')
			if end < 0 {
				return nil, protocolError(ErrUnterminatedText, line)
			}
			i += end + 2
			if i < n && !isBlank(line[i]) {
				return nil, protocolError(ErrMalformedToken, line)
			}
		} else {
			for i < n && !isBlank(line[i]) {
				i++
			}
		}
		args = append(args, line[start:i])
	}
	if len(args) == 0 {
		return nil, ErrEmptyLine
	}
	return args, nil
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// protocolError 根据指定的行生成一个异常
func protocolError(err error, line []byte) error {
	return fmt.Errorf("%w: %q", err, line)
}
