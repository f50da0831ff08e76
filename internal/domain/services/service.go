// Package services holds the query and command handlers of every domain and
// registers them on the bus.
package services

import (
	"context"
	"fmt"
	"time"

	"osintranet-http-service/internal/domain/bus"
	"osintranet-http-service/internal/domain/contracts"
	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/internal/infrastructure/repositories"
)

// Clock returns the current time. Tests replace it.
type Clock func() time.Time

// UTCClock is the wall clock in UTC.
func UTCClock() time.Time {
	return time.Now().UTC()
}

// Registrar registers its handlers on the bus.
type Registrar interface {
	Register(b *bus.Bus)
}

// notFound turns a missing record into the business error errorCode.
func notFound(err error, errorCode int, args ...any) error {
	if repositories.IsNotFound(err) {
		return intranet.NewBusinessError(errorCode, args...).WithCause(err)
	}
	return err
}

func receipt(identifier any, now time.Time) *contracts.ServiceReceipt {
	return &contracts.ServiceReceipt{Identifier: fmt.Sprint(identifier), EventDate: now}
}

func principal(ctx context.Context) (contracts.Principal, error) {
	p, ok := contracts.PrincipalFrom(ctx)
	if !ok {
		return p, intranet.NewBusinessError(code.ErrTokenInvalid)
	}
	return p, nil
}

func statusDate(date time.Time, now Clock) time.Time {
	if date.IsZero() {
		return now()
	}
	return date
}
