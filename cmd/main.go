package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"forexsignals/cmd/fetchnews"
)

var Version string

func main() {
	app := cli.NewApp()
	app.Name = "ForexSignals CMD"
	app.Usage = "The ForexSignals command line interface"

	app.Commands = []cli.Command{
		fetchNewsCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var fetchNewsCMD = cli.Command{
	Name:        "fetchnews",
	Usage:       "fetch one news batch and generate signals",
	Action:      fetchNewsAction,
	ArgsUsage:   "",
	Flags:       []cli.Flag{},
	Description: `Fetch one batch of financial news, score it and persist articles and signals`,
}

func fetchNewsAction(_ *cli.Context) error {

	logrus.Info("Starting fetchnews CMD")
	logrus.WithField("cmd", "fetchnews")

	job := &fetchnews.FetchNews{}
	err := job.Start()
	if err != nil {
		logrus.WithError(err).Error("Starting cmd")
		return err
	}

	return nil
}
