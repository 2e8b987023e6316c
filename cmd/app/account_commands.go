package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/ourshop/shop/cmd/app/commands"
	"github.com/ourshop/shop/internal/app"
	"github.com/ourshop/shop/internal/config"
)

func getAccountCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-admin",
			Usage: "Create an administrator account",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "username",
					Aliases:  []string{"u"},
					Required: true,
					Usage:    "Admin username",
				},
				&cli.StringFlag{
					Name:    "password",
					Aliases: []string{"p"},
					Usage:   "Admin password (omit to read it from stdin)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				adminUseCase, err := container.AdminUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize admin use case: %w", err)
				}

				return commands.RunCreateAdmin(
					ctx,
					adminUseCase,
					container.Logger(),
					commands.DefaultIO(),
					cmd.String("username"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
	}
}
