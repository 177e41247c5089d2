package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitjournal/internal/cli"
)

func main() {
	log.SetLevel(log.WarnLevel)

	if err := cli.NewRootCmd(&cli.App{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
