package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"kvmap/datastruct/dict"
)

type ShellProperties struct {
	Capacity int    `yaml:"capacity"`
	Prompt   string `yaml:"prompt"`
	LogLevel string `yaml:"log-level"`
	LogFile  string `yaml:"log-file"`
}

var Properties *ShellProperties

func init() {
	Properties = defaultProperties()
}

func defaultProperties() *ShellProperties {
	return &ShellProperties{
		Capacity: dict.DefaultCapacity,
		Prompt:   "cmd> ",
		LogLevel: "warn",
	}
}

// SetupConfigProperties 读取 YAML 配置文件，未出现的配置项保持默认值
func SetupConfigProperties(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(file)
	p, err := parse(file)
	if err != nil {
		return fmt.Errorf("config: parse %s: %w", filename, err)
	}
	Properties = p
	return nil
}

func parse(reader io.Reader) (*ShellProperties, error) {
	res := defaultProperties()
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)
	if err := decoder.Decode(res); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if res.Capacity <= 0 {
		return nil, fmt.Errorf("capacity must be positive, got %d", res.Capacity)
	}
	return res, nil
}
