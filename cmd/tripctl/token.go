package main

import (
	"errors"
	"fmt"

	"tripmatch/cmd/bootstrap"

	"github.com/urfave/cli/v2"
)

var tokenCmd = &cli.Command{
	Name:  "token",
	Usage: "Mint a bearer token for a user with the configured secret",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "user",
			Required: true,
			Usage:    "user id placed in the sub claim",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		if err := cfg.RequireJWT(); err != nil {
			return err
		}
		user := c.String("user")
		if user == "" {
			return errors.New("invalid user")
		}

		svc, err := bootstrap.NewJWTService(cfg)
		if err != nil {
			return err
		}
		token, err := svc.GenerateToken(user)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, token)
		return nil
	},
}
