package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"log/slog"
	"time"

	"tripmatch/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrConflict           = errs.New("concurrent modification detected")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
	// OnRetry is called before each backoff wait; attempt is 1-based.
	OnRetry func(attempt int, err error)
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 5,
		BaseDelay:  20 * time.Millisecond,
	}
}

// IsConflict reports errors that any backend marked as a lost race.
func IsConflict(err error) bool {
	return errs.Is(err, ErrConflict)
}

// Retry runs attempt until it succeeds, returns a non-retryable error, or
// exhausts policy.MaxRetries. Exhaustion is marked ErrMaxRetriesExceeded.
func Retry(ctx context.Context, policy RetryPolicy, isRetryable func(error) bool, attempt func(ctx context.Context) error) error {
	for n := 0; n <= policy.MaxRetries; n++ {
		err := attempt(ctx)
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if n == policy.MaxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", n+1,
				"error", err.Error())
			return errs.Mark(err, ErrMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(n, policy.BaseDelay)
		slog.Warn("retrying transaction due to retryable error",
			"attempt", n+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())
		if policy.OnRetry != nil {
			policy.OnRetry(n+1, err)
		}

		timer := time.NewTimer(waitTime)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return ErrMaxRetriesExceeded
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 2))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to the positive range above
	return int64(uval) % n
}
