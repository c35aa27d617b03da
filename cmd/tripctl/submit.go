package main

import (
	"encoding/json"

	"tripmatch/internal/domain/identity"
	"tripmatch/internal/domain/trip"
	resdto "tripmatch/internal/handler/dto/response"
	"tripmatch/internal/usecase/commands"

	"github.com/urfave/cli/v2"
)

func criteriaFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "start", Required: true, Usage: "week start date (YYYY-MM-DD)"},
		&cli.StringFlag{Name: "end", Required: true, Usage: "week end date (YYYY-MM-DD)"},
		&cli.StringFlag{Name: "destination", Required: true},
		&cli.StringFlag{Name: "interest", Required: true},
	}
}

var submitCmd = &cli.Command{
	Name:  "submit",
	Usage: "Run one match directly against the configured store",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "user", Required: true, Usage: "submitting user id"},
	}, criteriaFlags()...),
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		sub, err := trip.Validate(trip.Submission{
			UserID:        c.String("user"),
			WeekStartDate: c.String("start"),
			WeekEndDate:   c.String("end"),
			Destination:   c.String("destination"),
			Interest:      c.String("interest"),
		})
		if err != nil {
			return err
		}
		principal, err := identity.NewPrincipal(sub.UserID())
		if err != nil {
			return err
		}

		var matcher commands.MatchCommands
		return withApp(c.Context, cfg, func() error {
			result, err := matcher.Match(c.Context, principal, sub)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			return enc.Encode(resdto.FromMatchResult(result))
		}, &matcher)
	},
}
