// Command tripctl is the operator tool for tripmatch: schema migration,
// dev tokens, one-off submissions and concurrency simulation.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "tripctl",
		Usage: "Operate a tripmatch deployment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "store",
				Usage: "override STORE_DRIVER (postgres, sqlite, memory)",
			},
			&cli.StringFlag{
				Name:  "sqlite-path",
				Usage: "override SQLITE_PATH",
			},
		},
		Commands: []*cli.Command{
			migrateCmd,
			tokenCmd,
			submitCmd,
			simulateCmd,
		},
	}
}
