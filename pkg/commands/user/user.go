package user

import "github.com/urfave/cli/v2"

var Command = cli.Command{
	Name:  "user",
	Usage: "Registers and validates users",
	Subcommands: []*cli.Command{
		&userRegisterCmd,
		&userValidateCmd,
		&userGetCmd,
	},
}
