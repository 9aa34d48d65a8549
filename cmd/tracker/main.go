package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/soapboxsocial/tracker/cmd/tracker/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
