package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelFlags = []string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

const defaultCallerDepth = 2

var (
	mu       sync.Mutex
	logger   = log.New(os.Stderr, "", log.LstdFlags)
	minLevel = WARN
	logFile  *os.File
)

// ParseLevel 把配置中的级别名转为 Level，大小写不敏感
func ParseLevel(name string) (Level, error) {
	for i, flag := range levelFlags {
		if strings.EqualFold(name, flag) {
			return Level(i), nil
		}
	}
	return WARN, fmt.Errorf("unknown log level '%s'", name)
}

// Setup 设置日志的输出位置与最低级别，path 为空时输出到标准错误
func Setup(path string, level Level) error {
	var w io.Writer = os.Stderr
	var file *os.File
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		file, w = f, f
	}
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = file
	logger = log.New(w, "", log.LstdFlags)
	minLevel = level
	return nil
}

// SetOutput 仅替换输出位置，主要用于测试
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(w)
}

func output(level Level, msg string) {
	mu.Lock()
	defer mu.Unlock()
	if level < minLevel {
		return
	}
	prefix := fmt.Sprintf("[%s]", levelFlags[level])
	if _, file, line, ok := runtime.Caller(defaultCallerDepth); ok {
		prefix = fmt.Sprintf("[%s][%s:%d]", levelFlags[level], filepath.Base(file), line)
	}
	logger.SetPrefix(prefix + " ")
	_ = logger.Output(0, msg)
}

func Debug(v ...any) {
	output(DEBUG, fmt.Sprintln(v...))
}

func Debugf(format string, v ...any) {
	output(DEBUG, fmt.Sprintf(format, v...))
}

func Info(v ...any) {
	output(INFO, fmt.Sprintln(v...))
}

func Infof(format string, v ...any) {
	output(INFO, fmt.Sprintf(format, v...))
}

func Warn(v ...any) {
	output(WARN, fmt.Sprintln(v...))
}

func Error(v ...any) {
	output(ERROR, fmt.Sprintln(v...))
}

func Errorf(format string, v ...any) {
	output(ERROR, fmt.Sprintf(format, v...))
}

// Fatal 打印日志后以状态码 1 退出
func Fatal(v ...any) {
	output(FATAL, fmt.Sprintln(v...))
	os.Exit(1)
}
