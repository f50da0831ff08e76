package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
)

type letterheadGetQuery struct {
	Number int `json:"number" validate:"min=1,max=99"`
}

type postingAddCommand struct {
	Account string          `json:"account" validate:"required,accountnumber"`
	Debit   decimal.Decimal `json:"debit" validate:"dgte0"`
	Credit  decimal.Decimal `json:"credit" validate:"dgte0"`
}

func (c *postingAddCommand) Validate() error {
	if c.Debit.IsZero() && c.Credit.IsZero() {
		return intranet.NewBusinessError(code.ErrPostingAmountInvalid)
	}
	return nil
}

type unregisteredQuery struct{}

func newTestBus(t *testing.T, opts ...Option) *Bus {
	t.Helper()
	b := New(opts...)
	RegisterQuery(b, func(_ context.Context, q *letterheadGetQuery) (string, error) {
		if q.Number == 42 {
			return "", errors.New("database is on fire")
		}
		return "Letterhead", nil
	})
	RegisterCommand(b, func(_ context.Context, c *postingAddCommand) (int, error) {
		return 1, nil
	})
	return b
}

func TestQueryDispatchesToHandler(t *testing.T) {
	b := newTestBus(t)

	got, err := Query[string](context.Background(), b, &letterheadGetQuery{Number: 1})
	require.NoError(t, err)
	assert.Equal(t, "Letterhead", got)
	assert.True(t, b.HasHandler(&letterheadGetQuery{}))
	assert.False(t, b.HasHandler(&unregisteredQuery{}))
}

func TestDispatchWithoutHandler(t *testing.T) {
	b := newTestBus(t)

	_, err := Query[string](context.Background(), b, &unregisteredQuery{})
	assert.True(t, intranet.HasCode(err, code.ErrNoHandler))

	_, err = Query[string](context.Background(), b, nil)
	assert.True(t, intranet.HasCode(err, code.ErrNoHandler))

	var nilQuery *letterheadGetQuery
	_, err = Query[string](context.Background(), b, nilQuery)
	assert.True(t, intranet.HasCode(err, code.ErrNoHandler))

	// a command is not a query
	_, err = Query[int](context.Background(), b, &postingAddCommand{})
	assert.True(t, intranet.HasCode(err, code.ErrNoHandler))
}

func TestDispatchValidatesTags(t *testing.T) {
	b := newTestBus(t)

	_, err := Query[string](context.Background(), b, &letterheadGetQuery{Number: 100})
	require.Error(t, err)
	e, ok := intranet.As(err)
	require.True(t, ok)
	assert.Equal(t, intranet.KindBusiness, e.Kind())
	assert.Equal(t, code.ErrValidation, e.Code)
	assert.Equal(t, "The request is invalid: number (max)", e.Message(code.English))

	_, err = Execute[int](context.Background(), b, &postingAddCommand{Account: "KASSE!", Debit: decimal.NewFromInt(1)})
	assert.True(t, intranet.HasCode(err, code.ErrValidation))

	_, err = Execute[int](context.Background(), b, &postingAddCommand{Account: "KASSE", Debit: decimal.NewFromInt(-1)})
	assert.True(t, intranet.HasCode(err, code.ErrValidation))
}

func TestDispatchCallsValidate(t *testing.T) {
	b := newTestBus(t)

	_, err := Execute[int](context.Background(), b, &postingAddCommand{Account: "KASSE"})
	assert.True(t, intranet.HasCode(err, code.ErrPostingAmountInvalid))

	got, err := Execute[int](context.Background(), b, &postingAddCommand{Account: "KASSE", Credit: decimal.RequireFromString("12.50")})
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestDispatchClassifiesHandlerErrors(t *testing.T) {
	b := newTestBus(t)

	_, err := Query[string](context.Background(), b, &letterheadGetQuery{Number: 42})
	e, ok := intranet.As(err)
	require.True(t, ok)
	assert.Equal(t, intranet.KindSystem, e.Kind())
	assert.Equal(t, code.ErrUnknown, e.Code)
	assert.Contains(t, err.Error(), "database is on fire")
}

func TestDispatchRejectsWrongResultType(t *testing.T) {
	b := newTestBus(t)

	_, err := Query[int](context.Background(), b, &letterheadGetQuery{Number: 1})
	assert.True(t, intranet.HasCode(err, code.ErrHandlerResult))
}

func TestRegisterTwicePanics(t *testing.T) {
	b := newTestBus(t)
	assert.Panics(t, func() {
		RegisterQuery(b, func(context.Context, *letterheadGetQuery) (string, error) { return "", nil })
	})
}

func TestMetricsAndObservers(t *testing.T) {
	reg := prometheus.NewRegistry()
	var seen []Dispatch
	b := newTestBus(t, WithMetrics(NewMetrics(reg)), WithObserver(func(_ context.Context, d Dispatch) {
		seen = append(seen, d)
	}))

	_, _ = Query[string](context.Background(), b, &letterheadGetQuery{Number: 1})
	_, _ = Execute[int](context.Background(), b, &postingAddCommand{Account: "KASSE"})

	require.Len(t, seen, 2)
	assert.Equal(t, KindQuery, seen[0].Kind)
	assert.Equal(t, "letterheadGetQuery", seen[0].Name)
	assert.NoError(t, seen[0].Err)
	assert.Equal(t, KindCommand, seen[1].Kind)
	assert.Error(t, seen[1].Err)

	m := b.metrics
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatched.WithLabelValues("query", "letterheadGetQuery", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatched.WithLabelValues("command", "postingAddCommand", "failure")))
}
