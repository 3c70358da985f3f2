package mocks

import "checkinhq/infras/otel"

// noopScope satisfies otel.Scope without recording anything.
type noopScope struct{}

func NewScope() otel.Scope {
	return &noopScope{}
}

func (s *noopScope) End()                           {}
func (s *noopScope) TraceError(_ error)             {}
func (s *noopScope) TraceIfError(_ error)           {}
func (s *noopScope) AddEvent(_ string)              {}
func (s *noopScope) SetAttribute(_ string, _ any)   {}
func (s *noopScope) SetAttributes(_ map[string]any) {}
