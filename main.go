package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/derby/internal/derby/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := derby(); err != nil {
		logrus.Fatal(err)
	}
}

func derby() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
