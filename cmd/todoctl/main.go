package main

import (
	"fmt"
	"os"

	"github.com/enescakir/emoji"
	"github.com/ndjamen/todos/pkg/commands/todo"
	"github.com/ndjamen/todos/pkg/commands/user"
	"github.com/ndjamen/todos/pkg/version"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:                 "todoctl",
		Version:              version.String(),
		Usage:                "manages users and to-dos on a todos server",
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			&user.Command,
			&todo.Command,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", emoji.CrossMark, err.Error())
		os.Exit(1)
	}
}
