package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/threefoldtech/memdecode/cmds/modules/inventory"
	"github.com/threefoldtech/memdecode/cmds/modules/memui"
	"github.com/threefoldtech/memdecode/pkg/version"
	"github.com/urfave/cli/v2"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	exe := cli.App{
		Name:    "memdecode",
		Usage:   "decodes the memory devices of the smbios table",
		Version: version.Current().String(),
		Commands: []*cli.Command{
			&inventory.Module,
			&memui.Module,
		},
	}

	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println(c.App.Version)
	}
	name := filepath.Base(os.Args[0])
	args := os.Args
	for _, cmd := range exe.Commands {
		if cmd.Name == name {
			args = make([]string, 0, len(os.Args)+1)
			// this converts /bin/name <args> to 'memdecode <name> <args>'
			args = append(args, "bin", name)
			args = append(args, os.Args[1:]...)
			break
		}
	}

	if err := exe.Run(args); err != nil {
		log.Fatal().Err(err).Msg("exiting")
	}
}
