package commands

import (
	"fmt"
	"strconv"

	"github.com/ndjamen/todos/pkg/client"
	"github.com/urfave/cli/v2"
)

func ServerFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "server",
		Usage:    "todos server URL, TODOS_SERVER environment variable alternatively",
		EnvVars:  []string{"TODOS_SERVER"},
		Required: true,
	}
}

func SecretFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "secret",
		Usage:   "api secret issued at registration, TODOS_SECRET environment variable alternatively",
		EnvVars: []string{"TODOS_SECRET"},
	}
}

func OutputFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format, eg.: json",
	}
}

// Client returns a todos client configured from the server and secret flags
func Client(c *cli.Context) client.Client {
	return client.NewClient(c.String("server"), c.String("secret"))
}

// IDArg parses the first positional argument as an id
func IDArg(c *cli.Context) (int64, error) {
	if c.NArg() < 1 {
		return 0, fmt.Errorf("please provide an id")
	}
	id, err := strconv.ParseInt(c.Args().First(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %s", c.Args().First())
	}
	return id, nil
}
