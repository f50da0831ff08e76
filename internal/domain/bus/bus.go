// Package bus dispatches queries and commands to their single registered handler.
package bus

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"

	"osintranet-http-service/internal/error/code"
	"osintranet-http-service/internal/error/intranet"
	"osintranet-http-service/pkg/logger"
)

// Kind 消息类型
type Kind string

const (
	KindQuery   Kind = "query"
	KindCommand Kind = "command"
)

// Validatable is implemented by DTOs with rules struct tags cannot express.
type Validatable interface {
	Validate() error
}

// Observer is told about every dispatched message after its handler returned.
type Observer func(ctx context.Context, d Dispatch)

// Dispatch describes one handled message.
type Dispatch struct {
	Kind     Kind
	Name     string
	Message  any
	Err      error
	Duration time.Duration
}

type handlerFunc func(ctx context.Context, msg any) (any, error)

// Bus holds the handler registry. Handlers are registered at startup and the
// registry is read-only afterwards.
type Bus struct {
	queries   map[reflect.Type]handlerFunc
	commands  map[reflect.Type]handlerFunc
	validate  *validator.Validate
	metrics   *Metrics
	observers []Observer
}

// Option configures a Bus.
type Option func(*Bus)

// WithMetrics records dispatch metrics.
func WithMetrics(m *Metrics) Option {
	return func(b *Bus) { b.metrics = m }
}

// WithObserver adds an observer.
func WithObserver(o Observer) Option {
	return func(b *Bus) { b.observers = append(b.observers, o) }
}

// WithValidator replaces the default validator.
func WithValidator(v *validator.Validate) Option {
	return func(b *Bus) { b.validate = v }
}

// New creates an empty bus.
func New(opts ...Option) *Bus {
	b := &Bus{
		queries:  make(map[reflect.Type]handlerFunc),
		commands: make(map[reflect.Type]handlerFunc),
		validate: NewValidator(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// RegisterQuery registers the handler of query type Q. It panics when Q
// already has a handler.
func RegisterQuery[Q any, R any](b *Bus, handler func(context.Context, Q) (R, error)) {
	register(b.queries, KindQuery, handler)
}

// RegisterCommand registers the handler of command type C. It panics when C
// already has a handler.
func RegisterCommand[C any, R any](b *Bus, handler func(context.Context, C) (R, error)) {
	register(b.commands, KindCommand, handler)
}

func register[M any, R any](registry map[reflect.Type]handlerFunc, kind Kind, handler func(context.Context, M) (R, error)) {
	t := reflect.TypeOf((*M)(nil)).Elem()
	if handler == nil {
		panic(fmt.Sprintf("bus: nil %s handler for %s", kind, t))
	}
	if _, exists := registry[t]; exists {
		panic(fmt.Sprintf("bus: %s %s already has a handler", kind, t))
	}
	registry[t] = func(ctx context.Context, msg any) (any, error) {
		return handler(ctx, msg.(M))
	}
}

// Query runs the handler registered for the query's dynamic type.
func Query[R any](ctx context.Context, b *Bus, query any) (R, error) {
	return dispatch[R](ctx, b, b.queries, KindQuery, query)
}

// Execute runs the handler registered for the command's dynamic type.
func Execute[R any](ctx context.Context, b *Bus, command any) (R, error) {
	return dispatch[R](ctx, b, b.commands, KindCommand, command)
}

// HasHandler reports whether msg has a query or command handler.
func (b *Bus) HasHandler(msg any) bool {
	t := reflect.TypeOf(msg)
	_, isQuery := b.queries[t]
	_, isCommand := b.commands[t]
	return isQuery || isCommand
}

func dispatch[R any](ctx context.Context, b *Bus, registry map[reflect.Type]handlerFunc, kind Kind, msg any) (result R, err error) {
	start := time.Now()
	name := messageName(msg)
	defer func() {
		b.observe(ctx, Dispatch{Kind: kind, Name: name, Message: msg, Err: err, Duration: time.Since(start)})
	}()

	if isNil(msg) {
		return result, intranet.NewSystemError(code.ErrNoHandler, nil, kind)
	}
	handler, ok := registry[reflect.TypeOf(msg)]
	if !ok {
		return result, intranet.NewSystemError(code.ErrNoHandler, nil, name)
	}

	if err := b.validate.Struct(msg); err != nil {
		if _, invalid := err.(*validator.InvalidValidationError); !invalid {
			return result, intranet.Classify(err)
		}
	}
	if v, ok := msg.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return result, intranet.Classify(err)
		}
	}

	value, err := handler(ctx, msg)
	if err != nil {
		return result, intranet.Classify(err)
	}
	if value == nil {
		return result, nil
	}
	typed, ok := value.(R)
	if !ok {
		return result, intranet.NewSystemError(code.ErrHandlerResult, nil, name, fmt.Sprintf("%T", value))
	}
	return typed, nil
}

func (b *Bus) observe(ctx context.Context, d Dispatch) {
	outcome := "success"
	if d.Err != nil {
		outcome = "failure"
	}
	b.metrics.observe(d.Kind, d.Name, outcome, d.Duration)
	logger.With("kind", d.Kind, "message", d.Name, "outcome", outcome, "duration", d.Duration).Debug("dispatched")
	for _, o := range b.observers {
		o(ctx, d)
	}
}

func messageName(msg any) string {
	t := reflect.TypeOf(msg)
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func isNil(msg any) bool {
	if msg == nil {
		return true
	}
	v := reflect.ValueOf(msg)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}
