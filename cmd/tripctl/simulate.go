package main

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"tripmatch/internal/domain/identity"
	"tripmatch/internal/domain/trip"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/commands"
	"tripmatch/internal/usecase/queries"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var simulateCmd = &cli.Command{
	Name:  "simulate",
	Usage: "Submit groups*groupSize identical requests concurrently and check every user lands in one group",
	Flags: append([]cli.Flag{
		&cli.IntFlag{Name: "groups", Value: 10, Usage: "number of groups expected to form"},
		&cli.StringFlag{Name: "prefix", Value: "sim", Usage: "user id prefix"},
		&cli.IntFlag{Name: "concurrency", Value: 16, Usage: "maximum in-flight submissions"},
	}, criteriaFlags()...),
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		if c.Int("groups") <= 0 || c.Int("concurrency") <= 0 {
			return errors.New("groups and concurrency must be positive")
		}

		var (
			matcher commands.MatchCommands
			groupQ  queries.GroupQueries
			size    trip.GroupSize
		)
		return withApp(c.Context, cfg, func() error {
			users := simulatedUsers(c.String("prefix"), c.Int("groups")*int(size))
			if err := submitAll(c, matcher, users); err != nil {
				return err
			}
			formed, err := verifyMembership(c.Context, groupQ, users)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "users=%d groups=%d\n", len(users), formed)
			return nil
		}, &matcher, &groupQ, &size)
	},
}

func simulatedUsers(prefix string, n int) []string {
	users := make([]string, n)
	for i := range users {
		users[i] = fmt.Sprintf("%s-%04d", prefix, i)
	}
	return users
}

func submitAll(c *cli.Context, matcher commands.MatchCommands, users []string) error {
	g, ctx := errgroup.WithContext(c.Context)
	g.SetLimit(c.Int("concurrency"))

	for _, u := range users {
		g.Go(func() error {
			sub, err := trip.Validate(trip.Submission{
				UserID:        u,
				WeekStartDate: c.String("start"),
				WeekEndDate:   c.String("end"),
				Destination:   c.String("destination"),
				Interest:      c.String("interest"),
			})
			if err != nil {
				return err
			}
			principal, err := identity.NewPrincipal(u)
			if err != nil {
				return err
			}
			// a client would back off and resubmit on a transient conflict
			for {
				_, err := matcher.Match(ctx, principal, sub)
				if errs.Is(err, commands.ErrTransientConflict) && ctx.Err() == nil {
					continue
				}
				if err != nil {
					return fmt.Errorf("submit %s: %w", u, err)
				}
				return nil
			}
		})
	}
	return g.Wait()
}

// verifyMembership fails when a user belongs to more than one group.
func verifyMembership(ctx context.Context, groupQ queries.GroupQueries, users []string) (int, error) {
	var (
		mu       sync.Mutex
		groupIDs = make(map[string]struct{})
	)
	g, ctx := errgroup.WithContext(ctx)
	for _, u := range users {
		g.Go(func() error {
			views, _, err := groupQ.ListForMember(ctx, u, nil, queries.MaxListLimit)
			if err != nil {
				return err
			}
			if len(views) > 1 {
				return fmt.Errorf("user %s is in %d groups", u, len(views))
			}
			mu.Lock()
			defer mu.Unlock()
			for _, v := range views {
				groupIDs[v.ID.String()] = struct{}{}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(groupIDs), nil
}
