package user

import (
	"fmt"

	"github.com/enescakir/emoji"
	"github.com/fatih/color"
	"github.com/ndjamen/todos/pkg/commands"
	"github.com/urfave/cli/v2"
)

var userRegisterCmd = cli.Command{
	Name:  "register",
	Usage: "Registers a user and prints its api secret",
	UsageText: `todoctl user register \
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
	Action: register,
}

func register(c *cli.Context) error {
	client := commands.Client(c)

	user, err := client.Register(c.String("email"), c.String("password"))
	if err != nil {
		return err
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Fprintf(c.App.Writer, "%v User %s registered with id %d\n", emoji.CheckMark, user.Email, user.ID)
	fmt.Fprintf(c.App.Writer, "%v API secret: %s\n", emoji.BackhandIndexPointingRight, yellow(user.Secret))
	fmt.Fprintf(c.App.Writer, "%v Store it in the TODOS_SECRET environment variable, it is not shown again\n", emoji.Warning)
	return nil
}
