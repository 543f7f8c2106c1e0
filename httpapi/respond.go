package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/service/campaignmgmt"
	"github.com/tapp-eng/campaign-core/service/lifecycle"
	"github.com/tapp-eng/campaign-core/service/submission"
)

type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
}

func writeJSON(writer http.ResponseWriter, status int, body interface{}) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(body)
}

// writeError maps domain errors to HTTP statuses. Storage errors stay
// opaque to the client.
func writeError(writer http.ResponseWriter, err error) {
	body := errorBody{
		Error:  err.Error(),
		Reason: string(apperror.ReasonOf(err)),
	}

	switch {
	case errors.Is(err, submission.ErrNotAuthorized):
		writeJSON(writer, http.StatusForbidden, body)
		return
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		writeJSON(writer, http.StatusConflict, body)
		return
	case errors.Is(err, campaignmgmt.ErrInvalidCampaign),
		errors.Is(err, campaignmgmt.ErrSlugImmutable):
		writeJSON(writer, http.StatusBadRequest, body)
		return
	}

	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		writeJSON(writer, http.StatusNotFound, body)
	case apperror.KindCampaignNotActive, apperror.KindEditNotAllowed:
		writeJSON(writer, http.StatusConflict, body)
	case apperror.KindNotAParticipant:
		writeJSON(writer, http.StatusForbidden, body)
	case apperror.KindSelectionInvalid:
		writeJSON(writer, http.StatusBadRequest, body)
	case apperror.KindBusy:
		writer.Header().Set("Retry-After", "1")
		writeJSON(writer, http.StatusServiceUnavailable, body)
	default:
		writeJSON(writer, http.StatusInternalServerError,
			errorBody{Error: "internal error"})
	}
}

func decodeBody(req *http.Request, target interface{}) error {
	decoder := json.NewDecoder(req.Body)
	return decoder.Decode(target)
}

func pathInt64(req *http.Request, name string) (int64, error) {
	raw := chi.URLParam(req, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.Newf(apperror.KindNotFound, "invalid %s %q", name, raw)
	}
	return value, nil
}

func queryInt(req *http.Request, name string, fallback int) int {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// actorID reads the identity the gateway resolved. Zero when absent.
func actorID(req *http.Request) int64 {
	raw := req.Header.Get("X-User-ID")
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return value
}

// isManager reflects the role the gateway resolved, not a trust decision
// made here.
func isManager(req *http.Request) bool {
	return req.Header.Get("X-User-Role") == "manager"
}
