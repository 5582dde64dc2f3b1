package todo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/enescakir/emoji"
	"github.com/fatih/color"
	"github.com/ndjamen/todos/pkg/todos/model"
	"github.com/urfave/cli/v2"
)

var Command = cli.Command{
	Name:  "todo",
	Usage: "Manages to-dos",
	Subcommands: []*cli.Command{
		&todoAddCmd,
		&todoGetCmd,
		&todoListCmd,
		&todoDoneCmd,
		&todoUndoneCmd,
		&todoUpdateCmd,
		&todoDeleteCmd,
	},
}

func render(out io.Writer, todos []*model.ToDo, output string) error {
	if output == "json" {
		serialized, err := json.MarshalIndent(todos, "", "  ")
		if err != nil {
			return fmt.Errorf("cannot serialize to-dos %s", err)
		}
		fmt.Fprintln(out, string(serialized))
		return nil
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()
	for _, todo := range todos {
		status := emoji.HourglassNotDone
		if todo.IsDone != nil && *todo.IsDone {
			status = emoji.CheckMark
		}
		fmt.Fprintf(out, "%v %s %s\n", status, yellow(fmt.Sprintf("#%d", todo.ID)), todo.Description)
		if todo.UserID != nil {
			fmt.Fprintf(out, "%s\n", gray(fmt.Sprintf("  owned by user #%d", *todo.UserID)))
		}
	}
	return nil
}
