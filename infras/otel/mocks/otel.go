package mocks

import (
	"checkinhq/infras/otel"
	"context"
)

// noopOtel hands out no-op scopes so services can trace freely in tests.
type noopOtel struct{}

func NewOtel() otel.Otel {
	return &noopOtel{}
}

func (o *noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}
