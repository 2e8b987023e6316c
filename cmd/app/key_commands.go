package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ourshop/shop/cmd/app/commands"
	"github.com/ourshop/shop/internal/app"
	"github.com/ourshop/shop/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "ensure-key-pair",
			Usage: "Create the RSA key pair in KEYSTORE_PATH if it does not exist yet",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)

				return commands.RunEnsureKeyPair(ctx, container.KeyPairStore(), container.Logger(), os.Stdout)
			},
		},
		{
			Name:  "create-symmetric-key",
			Usage: "Generate a session key wrapped by a KMS key",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "kms-key-uri",
					Required: true,
					Usage:    "gocloud.dev secrets URI (e.g., base64key://..., hashivault://...)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)

				return commands.RunCreateSymmetricKey(
					ctx,
					container.KMSService(),
					container.Logger(),
					os.Stdout,
					cmd.String("kms-key-uri"),
				)
			},
		},
	}
}
