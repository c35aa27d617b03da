package commands

import (
	"context"
	"log/slog"
	"time"

	"tripmatch/internal/domain/identity"
	"tripmatch/internal/domain/trip"
	"tripmatch/internal/infra"
	"tripmatch/internal/pkg/clock"
	"tripmatch/internal/pkg/errs"
	"tripmatch/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateSubmission = errs.New("user already has a pending submission with these criteria")
	ErrTransientConflict   = errs.New("match could not complete because of concurrent activity")
	ErrUnauthenticated     = errs.New("no verified identity")
	ErrIdentityMismatch    = errs.New("submission user does not match verified identity")
)

type Outcome string

const (
	OutcomeFormed   Outcome = "formed"
	OutcomeEnqueued Outcome = "enqueued"
)

// metric labels for failed matches
const (
	outcomeDuplicate = "duplicate"
	outcomeConflict  = "conflict"
	outcomeInvalid   = "invalid_group"
	outcomeError     = "error"
)

type MatchResult struct {
	Outcome Outcome
	Group   *trip.Group        // set when Outcome is OutcomeFormed
	Pending *trip.PendingEntry // set when Outcome is OutcomeEnqueued
}

type GroupFormedEvent struct {
	GroupID       uuid.UUID `json:"groupId"`
	Members       []string  `json:"members"`
	WeekStartDate string    `json:"weekStartDate"`
	WeekEndDate   string    `json:"weekEndDate"`
	Destination   string    `json:"destination"`
	Interest      string    `json:"interest"`
	FormedAt      time.Time `json:"formedAt"`
}

func NewGroupFormedEvent(g *trip.Group) GroupFormedEvent {
	c := g.Criteria()
	return GroupFormedEvent{
		GroupID:       g.ID(),
		Members:       g.Members(),
		WeekStartDate: c.WeekStart().Format(trip.DateLayout),
		WeekEndDate:   c.WeekEnd().Format(trip.DateLayout),
		Destination:   c.Destination(),
		Interest:      c.Interest(),
		FormedAt:      g.CreatedAt(),
	}
}

type GroupPublisher interface {
	PublishGroupFormed(ctx context.Context, evt GroupFormedEvent) error
}

type MatchRecorder interface {
	RecordMatch(outcome string, elapsed time.Duration)
}

type MatchSettings struct {
	GroupSize trip.GroupSize
	// Timeout bounds one Match call including retries; zero means none.
	Timeout time.Duration
}

const publishTimeout = 2 * time.Second

type MatchCommands interface {
	Match(ctx context.Context, principal identity.Principal, sub trip.ValidSubmission) (*MatchResult, error)
}

type matchUseCaseImpl struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	settings  MatchSettings
	publisher GroupPublisher
	recorder  MatchRecorder
}

func NewMatchUseCase(uow shared.UnitOfWork, clk clock.Clock, settings MatchSettings, publisher GroupPublisher, recorder MatchRecorder) MatchCommands {
	if settings.GroupSize == 0 {
		settings.GroupSize = trip.DefaultGroupSize
	}
	return &matchUseCaseImpl{
		uow:       uow,
		clock:     clk,
		settings:  settings,
		publisher: publisher,
		recorder:  recorder,
	}
}

func (uc *matchUseCaseImpl) Match(ctx context.Context, principal identity.Principal, sub trip.ValidSubmission) (*MatchResult, error) {
	if principal.IsZero() {
		return nil, ErrUnauthenticated
	}
	if sub.IsZero() {
		return nil, errs.Mark(errs.New("submission was not validated"), trip.ErrValidation)
	}
	if principal.UserID() != sub.UserID() {
		return nil, ErrIdentityMismatch
	}

	if uc.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.settings.Timeout)
		defer cancel()
	}

	started := time.Now()
	var result *MatchResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// fn may re-run; start every attempt from a clean slate
		result = nil
		r, aerr := uc.attempt(ctx, tx, sub)
		if aerr != nil {
			return aerr
		}
		result = r
		return nil
	})
	if err != nil {
		err = uc.classify(ctx, sub, err)
		uc.record(outcomeLabel(err), started)
		return nil, err
	}

	uc.record(string(result.Outcome), started)
	if result.Outcome == OutcomeFormed {
		uc.publish(ctx, result.Group)
	}
	return result, nil
}

func (uc *matchUseCaseImpl) attempt(ctx context.Context, tx shared.Tx, sub trip.ValidSubmission) (*MatchResult, error) {
	criteria := sub.Criteria()
	fp := criteria.Fingerprint()
	now := clock.Stamp(uc.clock)

	exists, err := tx.Pending().HasPending(ctx, sub.UserID(), fp)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateSubmission
	}

	needed := uc.settings.GroupSize.Peers()
	peers, err := tx.Pending().FindCompatible(ctx, fp, sub.UserID(), needed)
	if err != nil {
		return nil, err
	}
	trip.SortOldestFirst(peers)
	if len(peers) > needed {
		peers = peers[:needed]
	}

	if len(peers) < needed {
		entry, err := trip.NewPendingEntry(sub, now)
		if err != nil {
			return nil, err
		}
		if err := tx.Pending().Insert(ctx, entry); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return nil, errs.Mark(err, ErrDuplicateSubmission)
			}
			return nil, err
		}
		return &MatchResult{Outcome: OutcomeEnqueued, Pending: entry}, nil
	}

	members := make([]string, 0, len(peers)+1)
	members = append(members, sub.UserID())
	for _, p := range peers {
		members = append(members, p.UserID())
	}
	group, err := trip.NewGroup(uc.settings.GroupSize, criteria, members, now)
	if err != nil {
		return nil, err
	}

	if err := tx.Pending().DeleteAll(ctx, trip.PendingIDs(peers)); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, shared.ErrConflict)
		}
		return nil, err
	}
	if err := tx.Groups().Create(ctx, group); err != nil {
		return nil, err
	}
	return &MatchResult{Outcome: OutcomeFormed, Group: group}, nil
}

func (uc *matchUseCaseImpl) classify(ctx context.Context, sub trip.ValidSubmission, err error) error {
	switch {
	case errs.Is(err, shared.ErrMaxRetriesExceeded):
		return errs.Mark(err, ErrTransientConflict)
	case errs.Is(err, context.DeadlineExceeded):
		// out of time waiting on locks or backoff; the client may retry
		return errs.Mark(err, ErrTransientConflict)
	case errs.Is(err, trip.ErrInvalidGroup):
		err = errs.WithHint(err, "the matcher built a group of the wrong shape; check MATCH_GROUP_SIZE and pool contents")
		slog.ErrorContext(ctx, "group invariant violated",
			"user_id", sub.UserID(),
			"fingerprint", sub.Criteria().Fingerprint().String(),
			"error", err.Error(),
			"hints", errs.Hints(err),
			"stack", errs.ExtractStackLines(err, 12))
		return err
	}
	return err
}

func (uc *matchUseCaseImpl) publish(ctx context.Context, g *trip.Group) {
	if uc.publisher == nil {
		return
	}
	// the group is committed; the caller's cancellation must not drop the event
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := uc.publisher.PublishGroupFormed(ctx, NewGroupFormedEvent(g)); err != nil {
		slog.WarnContext(ctx, "group formed event not published",
			"group_id", g.ID().String(),
			"error", err.Error())
	}
}

func (uc *matchUseCaseImpl) record(outcome string, started time.Time) {
	if uc.recorder != nil {
		uc.recorder.RecordMatch(outcome, time.Since(started))
	}
}

func outcomeLabel(err error) string {
	switch {
	case errs.Is(err, ErrDuplicateSubmission):
		return outcomeDuplicate
	case errs.Is(err, ErrTransientConflict):
		return outcomeConflict
	case errs.Is(err, trip.ErrInvalidGroup):
		return outcomeInvalid
	default:
		return outcomeError
	}
}
