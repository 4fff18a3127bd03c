// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pipeline composes the per-route request stages.
//
// A route declares its stages once at startup. Stages always run in the
// fixed order Cache, Identity, Authorization, then the handler; the handler's
// result flows back through the cache stage, which stores it on a miss. Each
// stage either calls the next one or ends the request with its own response.
//
// Handlers and stages return errors instead of writing 500 responses
// themselves; the error boundary of the transport layer converts them.
package pipeline

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HandlerFunc is an HTTP handler that reports unhandled failures as errors.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Kind identifies a stage's position in the pipeline.
type Kind int

// Stage kinds in execution order.
const (
	KindCache Kind = iota + 1
	KindIdentity
	KindAuthorization
)

func (k Kind) String() string {
	switch k {
	case KindCache:
		return "cache"
	case KindIdentity:
		return "identity"
	case KindAuthorization:
		return "authorization"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Stage is one composable step in a route's pipeline.
type Stage struct {
	Kind Kind
	Name string
	Wrap func(next HandlerFunc) HandlerFunc
}

// Errors returned by [New] for an invalid stage declaration.
var (
	ErrStageOrder                   = errors.New("pipeline stages out of order")
	ErrDuplicateStage               = errors.New("duplicate pipeline stage")
	ErrAuthorizationWithoutIdentity = errors.New("authorization stage without a preceding identity stage")
	ErrInvalidStage                 = errors.New("invalid pipeline stage")
)

// Pipeline is an ordered, validated list of stages.
type Pipeline struct {
	stages []Stage
}

// New validates stages and returns the pipeline.
//
// Stages must be given in the order Cache, Identity, Authorization; each
// kind may appear at most once, and an Authorization stage requires an
// Identity stage before it.
func New(stages ...Stage) (*Pipeline, error) {
	var prev Kind
	hasIdentity := false

	for i, s := range stages {
		if s.Wrap == nil || s.Kind < KindCache || s.Kind > KindAuthorization {
			return nil, fmt.Errorf("%w: #%d %q", ErrInvalidStage, i, s.Name)
		}

		switch {
		case s.Kind == prev:
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateStage, s.Kind, s.Name)
		case s.Kind < prev:
			return nil, fmt.Errorf("%w: %s %q after %s", ErrStageOrder, s.Kind, s.Name, prev)
		}

		if s.Kind == KindAuthorization && !hasIdentity {
			return nil, fmt.Errorf("%w: %q", ErrAuthorizationWithoutIdentity, s.Name)
		}
		if s.Kind == KindIdentity {
			hasIdentity = true
		}
		prev = s.Kind
	}

	return &Pipeline{stages: append([]Stage(nil), stages...)}, nil
}

// MustNew is like [New] but panics on an invalid declaration. It is meant for
// static route tables built at startup.
func MustNew(stages ...Stage) *Pipeline {
	p, err := New(stages...)
	if err != nil {
		panic(err)
	}
	return p
}

// Then wraps h with the pipeline's stages; the first stage runs first.
func (p *Pipeline) Then(h HandlerFunc) HandlerFunc {
	for i := len(p.stages) - 1; i >= 0; i-- {
		h = p.stages[i].Wrap(h)
	}
	return h
}

// String lists the stage names, e.g. "cache -> handler".
func (p *Pipeline) String() string {
	names := make([]string, 0, len(p.stages)+1)
	for _, s := range p.stages {
		names = append(names, s.Name)
	}
	names = append(names, "handler")
	return strings.Join(names, " -> ")
}
