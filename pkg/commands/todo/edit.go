package todo

import (
	"fmt"

	"github.com/enescakir/emoji"
	"github.com/ndjamen/todos/pkg/commands"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/urfave/cli/v2"
)

var todoGetCmd = cli.Command{
	Name:      "get",
	Usage:     "Prints a to-do",
	UsageText: `todoctl todo get --server http://todos.mycompany.com 1`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
		commands.OutputFlag(),
	},
	Action: get,
}

var todoUpdateCmd = cli.Command{
	Name:  "update",
	Usage: "Overwrites the description and the done flag of a to-do",
	UsageText: `todoctl todo update \
     --server http://todos.mycompany.com \
     --description "buy oat milk" \
     --done \
     1`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
		commands.OutputFlag(),
		&cli.StringFlag{
			Name:     "description",
			Usage:    "the new description",
			Required: true,
		},
		&cli.BoolFlag{
			Name:  "done",
			Usage: "whether the to-do is done, unset when omitted",
		},
	},
	Action: update,
}

var todoDeleteCmd = cli.Command{
	Name:      "delete",
	Usage:     "Deletes a to-do",
	UsageText: `todoctl todo delete --server http://todos.mycompany.com 1`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
	},
	Action: remove,
}

func get(c *cli.Context) error {
	id, err := commands.IDArg(c)
	if err != nil {
		return err
	}

	todo, err := commands.Client(c).ToDoGet(id)
	if err != nil {
		return err
	}

	return render(c.App.Writer, []*model.ToDo{todo}, c.String("output"))
}

func update(c *cli.Context) error {
	id, err := commands.IDArg(c)
	if err != nil {
		return err
	}

	todo := &model.ToDo{
		ID:          id,
		Description: c.String("description"),
	}
	if c.IsSet("done") {
		done := c.Bool("done")
		todo.IsDone = &done
	}

	updated, err := commands.Client(c).ToDoPut(todo)
	if err != nil {
		return err
	}

	return render(c.App.Writer, []*model.ToDo{updated}, c.String("output"))
}

func remove(c *cli.Context) error {
	id, err := commands.IDArg(c)
	if err != nil {
		return err
	}

	err = commands.Client(c).ToDoDelete(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "%v To-do #%d deleted\n", emoji.CheckMark, id)
	return nil
}
