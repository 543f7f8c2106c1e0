package httpapi

import (
	"net/http"

	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/service/roster"
	"github.com/tapp-eng/campaign-core/service/submission"
)

type inviteRequest struct {
	Invites []struct {
		UserID int64  `json:"user_id"`
		Email  string `json:"email"`
	} `json:"invites"`
}

func (s *Server) handleInviteParticipants(writer http.ResponseWriter, req *http.Request) {
	if !isManager(req) {
		writeError(writer, submission.ErrNotAuthorized)
		return
	}

	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	var body inviteRequest
	if err := decodeBody(req, &body); err != nil {
		writeJSON(writer, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	invites := make([]roster.Invite, 0, len(body.Invites))
	for _, invite := range body.Invites {
		invites = append(invites, roster.Invite{
			UserID: invite.UserID,
			Email:  invite.Email,
		})
	}

	added, err := s.rosters.InviteMany(req.Context(), campaignID, invites)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusOK, map[string]int{"added": added})
}

func (s *Server) handleRemoveParticipant(writer http.ResponseWriter, req *http.Request) {
	if !isManager(req) {
		writeError(writer, submission.ErrNotAuthorized)
		return
	}

	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}
	userID, err := pathInt64(req, "userID")
	if err != nil {
		writeError(writer, err)
		return
	}

	if err := s.rosters.Remove(req.Context(), campaignID, userID, actorID(req)); err != nil {
		writeError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListParticipants(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	participants, err := s.rosters.List(req.Context(), campaignID,
		model.ParticipantStatus(req.URL.Query().Get("status")),
		queryInt(req, "limit", 100), queryInt(req, "offset", 0))
	if err != nil {
		writeError(writer, err)
		return
	}

	views := make([]participantView, 0, len(participants))
	for _, participant := range participants {
		views = append(views, toParticipantView(participant))
	}
	writeJSON(writer, http.StatusOK, map[string]interface{}{"participants": views})
}

func (s *Server) handleDismissBanner(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}
	userID, err := pathInt64(req, "userID")
	if err != nil {
		writeError(writer, err)
		return
	}

	if err := s.rosters.DismissBanner(req.Context(), campaignID, userID); err != nil {
		writeError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}
