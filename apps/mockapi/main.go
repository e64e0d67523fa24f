package main

import (
	"log"
	"os"

	echoapi "github.com/vamsidulam/exameval/apps/mockapi/echo"
	"github.com/vamsidulam/exameval/core"
	logsvc "github.com/vamsidulam/exameval/services/logger"
)

func main() {
	defer os.Exit(0)

	std := log.New(os.Stdout, "MOCKAPI : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(std)

	addr := core.Conf.GetString("mockApiAddress")
	app := echoapi.NewServer(&echoapi.Options{
		Address: addr,
		Logger:  logger,
	})
	logger.Info("mock API listening on " + addr)
	app.Start()
}
