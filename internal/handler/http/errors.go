// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidPathID is returned by handlers whose {id} path parameter is
	// not a decimal integer. It is not mapped to a status, so it reaches the
	// error boundary and is answered with 500.
	ErrInvalidPathID = errors.New("invalid id")

	// ErrNoPrincipal is returned by the authorization stage when no identity
	// stage ran before it. Pipeline validation makes this unreachable for
	// routes declared in Init.
	ErrNoPrincipal = errors.New("no principal in request context")

	// ErrNoValidatedUser is returned by createUser when it is mounted without
	// withValidatedUser.
	ErrNoValidatedUser = errors.New("no validated user in request context")
)
