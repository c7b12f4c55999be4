package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-delta-sync/internal/app"
	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/internal/service"
	"github.com/MKhiriev/go-delta-sync/internal/store"
)

// errorStatusMap translates service and store sentinels into HTTP status
// codes. Matching is done with errors.Is, so wrapped sentinels resolve too.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrInvalidClientCredentials: http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:    http.StatusBadRequest,

	store.ErrUnknownCollection:  http.StatusNotFound,
	store.ErrEntityNotFound:     http.StatusNotFound,
	store.ErrCursorNotPersisted: http.StatusInternalServerError,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrPreparingStatement:   http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap picks the response body for sentinels whose default wording
// would leak internals. Errors not listed here respond with the standard
// status text.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided:      app.MsgInvalidDataProvided,
	service.ErrInvalidClientCredentials: app.MsgInvalidClientCredentials,
	service.ErrTokenIsExpiredOrInvalid:  app.MsgTokenIsExpiredOrInvalid,
	store.ErrUnknownCollection:          app.MsgUnknownCollection,
	store.ErrEntityNotFound:             app.MsgEntityNotFound,
}

func statusFromError(err error) int {
	// transient storage trouble is checked first: the retryable tag wraps one
	// of the 500-mapped operation errors, and 503 tells clients to back off
	// and retry instead of treating the failure as permanent
	if errors.Is(err, store.ErrRetryableStorage) {
		return http.StatusServiceUnavailable
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error, status int) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return http.StatusText(status)
}

// writeError logs err with the request-scoped logger and writes the mapped
// status and message. logMsg describes the failed operation for the log line.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(logMsg)
	} else {
		log.Warn().Err(err).Msg(logMsg)
	}

	http.Error(w, messageFromError(err, status), status)
}
