// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/pipeline"
	"github.com/MKhiriev/go-blog-api/internal/utils"
)

const (
	maxBoundaryMessageLength = 200
	panicBoundaryMessage     = "internal server error"
)

// boundary adapts a pipeline to [http.Handler]. It is the only place
// unhandled errors and panics are converted into a response:
//
//	500 {"success": false, "message": "<error description>"}
//
// The error is logged first. Stack traces of panics go to the log only. When
// the pipeline had already started the response, the error is only logged.
func (h *Handler) boundary(next pipeline.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		bw := &responseWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("recovered from panic")
			writeUnhandled(bw, log, panicBoundaryMessage)
		}()

		if err := next(bw, r); err != nil {
			log.Err(err).Msg("unhandled error")
			writeUnhandled(bw, log, boundaryMessage(err))
		}
	})
}

func writeUnhandled(w *responseWriter, log *logger.Logger, message string) {
	if w.wroteHeader {
		log.Warn().Int("status", w.status).Msg("response already started, unhandled error not rendered")
		return
	}
	utils.WriteError(w, message, http.StatusInternalServerError)
}

// boundaryMessage keeps the first line of the error text, capped at
// maxBoundaryMessageLength runes.
func boundaryMessage(err error) string {
	msg, _, _ := strings.Cut(err.Error(), "\n")
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return panicBoundaryMessage
	}

	if runes := []rune(msg); len(runes) > maxBoundaryMessageLength {
		msg = string(runes[:maxBoundaryMessageLength])
	}
	return msg
}
