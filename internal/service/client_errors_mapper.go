// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-delta-sync/internal/adapter"
	"github.com/MKhiriev/go-delta-sync/internal/app"
	"github.com/MKhiriev/go-delta-sync/internal/store"
)

// mapFeedError translates the adapter's transport error into a service business error
func mapFeedError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrServerUnavailable),
		errors.Is(err, adapter.ErrRequestTimeout),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable):
		return fmt.Errorf("%w: %w", ErrFeedUnavailable, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidClientCredentials {
			return ErrInvalidClientCredentials
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUnknownCollection {
			return store.ErrUnknownCollection
		}
		return store.ErrEntityNotFound

	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidSinceVersion:
			return ErrInvalidDataProvided
		case app.MsgNoEntityIDsProvided, app.MsgEmptyEntityID:
			return ErrInvalidDataProvided
		}
		return ErrInvalidDataProvided

	case errors.Is(err, adapter.ErrInternalServerError):
		return fmt.Errorf("%w: %w", ErrFeedInternal, err)
	}

	return err
}

// IsTransientError reports whether err warrants a retry on the next scheduled
// sync session rather than operator attention.
func IsTransientError(err error) bool {
	return errors.Is(err, ErrFeedUnavailable)
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
