package main

import (
	"log"
	"os"

	"github.com/vamsidulam/exameval/core"
	"github.com/vamsidulam/exameval/core/session"
	"github.com/vamsidulam/exameval/services/examapi"
	"github.com/vamsidulam/exameval/storage/prefs"
)

var logger core.Logger

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "EXAMEVAL : ", log.LstdFlags)
	logger = core.NewStdLogger(std)

	store := prefs.NewFileStore(core.Conf.GetString("prefsPath"))
	sess, err := session.NewContext(store)
	errAndDie(err)

	validate, translator := core.NewValidator()

	cli := commandLine{
		sess:       sess,
		client:     examapi.NewClient(examapi.Options{Session: sess, Logger: logger}),
		validate:   validate,
		translator: translator,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			printError(err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
