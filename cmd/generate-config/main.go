package main

import (
	"flag"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"bigtwo-server/internal/config"
)

var out = flag.String("o", "", "write the config to this file instead of stdout")

func main() {
	flag.Parse()

	var w io.Writer = os.Stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			logrus.WithError(err).Fatal("could not create config file")
		}
		defer file.Close()

		w = file
	}

	if err := yaml.NewEncoder(w).Encode(config.DefaultConfig()); err != nil {
		logrus.WithError(err).Fatal("could not encode config")
	}
}
