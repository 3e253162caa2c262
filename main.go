package main

import (
	"context"
	"log"
	"os"

	"github.com/soctools/header2svd/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "SDK Header to SVD Generator"
	app.Description = "SDK Header to SVD Generator"
	app.Commands = []*cli.Command{
		cmd.GenerateCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
