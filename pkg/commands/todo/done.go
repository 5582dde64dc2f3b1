package todo

import (
	"github.com/ndjamen/todos/pkg/commands"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/urfave/cli/v2"
)

var todoDoneCmd = cli.Command{
	Name:      "done",
	Usage:     "Marks a to-do as done",
	UsageText: `todoctl todo done --server http://todos.mycompany.com 1`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
		commands.OutputFlag(),
	},
	Action: func(c *cli.Context) error {
		return setDone(c, true)
	},
}

var todoUndoneCmd = cli.Command{
	Name:      "undone",
	Usage:     "Marks a to-do as not done",
	UsageText: `todoctl todo undone --server http://todos.mycompany.com 1`,
	Flags: []cli.Flag{
		commands.ServerFlag(),
		commands.OutputFlag(),
	},
	Action: func(c *cli.Context) error {
		return setDone(c, false)
	},
}

func setDone(c *cli.Context, isDone bool) error {
	id, err := commands.IDArg(c)
	if err != nil {
		return err
	}

	todo, err := commands.Client(c).ToDoPatch(id, isDone)
	if err != nil {
		return err
	}

	return render(c.App.Writer, []*model.ToDo{todo}, c.String("output"))
}
