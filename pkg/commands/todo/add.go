package todo

import (
	"fmt"
	"strings"

	"github.com/ndjamen/todos/pkg/commands"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/urfave/cli/v2"
)

var todoAddCmd = cli.Command{
	Name:  "add",
	Usage: "Creates a to-do",
	UsageText: `todoctl todo add \
     --server http://todos.mycompany.com \
     --user 42 \
     buy milk`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
		commands.OutputFlag(),
		&cli.Int64Flag{
			Name:  "user",
			Usage: "id of the owning user",
		},
		&cli.BoolFlag{
			Name:  "done",
			Usage: "create the to-do as done",
		},
	},
	Action: add,
}

func add(c *cli.Context) error {
	description := strings.Join(c.Args().Slice(), " ")
	if description == "" {
		return fmt.Errorf("please provide a description")
	}

	todo := &model.ToDo{Description: description}
	if c.IsSet("done") {
		done := c.Bool("done")
		todo.IsDone = &done
	}
	if c.IsSet("user") {
		userID := c.Int64("user")
		todo.UserID = &userID
	}

	saved, err := commands.Client(c).ToDoPost(todo)
	if err != nil {
		return err
	}

	return render(c.App.Writer, []*model.ToDo{saved}, c.String("output"))
}
