package user

import (
	"fmt"

	"github.com/ndjamen/todos/pkg/commands"
	"github.com/urfave/cli/v2"
)

var userValidateCmd = cli.Command{
	Name:  "validate",
	Usage: "Checks the credentials of a user and prints its api secret",
	UsageText: `todoctl user validate \
     --email jane@mycompany.com \
     --password s3cr3t \
     --server http://todos.mycompany.com`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
		&cli.StringFlag{
			Name:     "email",
			Usage:    "email of the user",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "password",
			Usage:    "password of the user",
			Required: true,
		},
	},
	Action: validate,
}

func validate(c *cli.Context) error {
	client := commands.Client(c)

	secret, err := client.Validate(c.String("email"), c.String("password"))
	if err != nil {
		return err
	}

	fmt.Fprintln(c.App.Writer, secret)
	return nil
}
