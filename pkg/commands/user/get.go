package user

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/ndjamen/todos/pkg/commands"
	"github.com/urfave/cli/v2"
)

var userGetCmd = cli.Command{
	Name:      "get",
	Usage:     "Prints a user",
	UsageText: `todoctl user get --server http://todos.mycompany.com 42`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
		commands.OutputFlag(),
	},
	Action: get,
}

func get(c *cli.Context) error {
	id, err := commands.IDArg(c)
	if err != nil {
		return err
	}

	client := commands.Client(c)
	user, err := client.UserGet(id)
	if err != nil {
		return err
	}

	if c.String("output") == "json" {
		out, err := json.MarshalIndent(user, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot serialize user %s", err)
		}
		fmt.Fprintln(c.App.Writer, string(out))
		return nil
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(c.App.Writer, "%s %s\n", yellow(fmt.Sprintf("#%d", user.ID)), user.Email)
	return nil
}
