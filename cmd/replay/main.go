package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"bigtwo-server/internal/config"
	"bigtwo-server/internal/replay"
	"bigtwo-server/pkg/table"
)

// Version is the build version
var Version = "v0.0.0-dev"

var scriptFile = flag.String("script", "", "the YAML script to replay")

func main() {
	flag.Parse()
	setupLogger()

	if *scriptFile == "" {
		logrus.Fatal("missing -script")
	}

	script, err := replay.LoadScript(*scriptFile)
	if err != nil {
		logrus.WithError(err).WithField("script", *scriptFile).Fatal("could not load script")
	}

	opts := table.DefaultOptions()
	opts.HistoryLimit = config.Instance().Table.HistoryLimit

	logrus.WithField("version", Version).Debug("starting replay")
	t, results, err := replay.Run(logrus.StandardLogger(), script, opts)
	if err != nil {
		logrus.WithError(err).Fatal("could not replay script")
	}

	for _, result := range results {
		fmt.Println(result)
	}

	fmt.Println(t.Round())
}

func setupLogger() {
	cfg := config.Instance()
	if lvl := cfg.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Log.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	logrus.SetOutput(os.Stderr)
}
