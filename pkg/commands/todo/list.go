package todo

import (
	"fmt"

	"github.com/enescakir/emoji"
	"github.com/ndjamen/todos/pkg/commands"
	"github.com/urfave/cli/v2"
)

var todoListCmd = cli.Command{
	Name:  "list",
	Usage: "Lists the to-dos of the user owning the api secret",
	UsageText: `todoctl todo list \
     --server http://todos.mycompany.com \
     --secret 0f5a3b1e-5f0c-4a55-9c8e-34c1e6c2d4f1`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
		commands.SecretFlag(),
		commands.OutputFlag(),
		&cli.BoolFlag{
			Name:  "done",
			Usage: "only the done to-dos",
		},
		&cli.BoolFlag{
			Name:  "open",
			Usage: "only the to-dos not done yet",
		},
	},
	Action: list,
}

func list(c *cli.Context) error {
	if c.Bool("done") && c.Bool("open") {
		return fmt.Errorf("--done and --open are mutually exclusive")
	}

	var isDone *bool
	if c.Bool("done") || c.Bool("open") {
		done := c.Bool("done")
		isDone = &done
	}

	todos, err := commands.Client(c).ToDosGet(isDone)
	if err != nil {
		return err
	}

	if len(todos) == 0 && c.String("output") != "json" {
		fmt.Fprintf(c.App.Writer, "%v Nothing to do\n", emoji.ConfettiBall)
		return nil
	}

	return render(c.App.Writer, todos, c.String("output"))
}
