package main

import (
	"context"
	"os"

	"kvmap/config"
	"kvmap/console"
	"kvmap/database"
	"kvmap/lib/logger"
)

const configFile = "kvmap.yaml"

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

func main() {
	if fileExists(configFile) {
		if err := config.SetupConfigProperties(configFile); err != nil {
			logger.Fatal(err)
		}
	}
	level, err := logger.ParseLevel(config.Properties.LogLevel)
	if err != nil {
		logger.Fatal(err)
	}
	if err = logger.Setup(config.Properties.LogFile, level); err != nil {
		logger.Fatal(err)
	}
	db := database.NewDB(config.Properties.Capacity)
	hr := console.MakeHandler(db, config.Properties.Prompt, console.IsTerminal(os.Stdin))
	if err = console.Serve(context.Background(), os.Stdin, os.Stdout, hr); err != nil {
		logger.Fatal(err)
	}
}
