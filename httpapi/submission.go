package httpapi

import (
	"net/http"

	"github.com/tapp-eng/campaign-core/service/submission"
)

type submitRequest struct {
	Lines []struct {
		ProductID int64  `json:"product_id"`
		VariantID int64  `json:"variant_id"`
		Color     string `json:"color"`
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
	} `json:"lines"`
}

func (r submitRequest) toLines() []submission.LineItem {
	lines := make([]submission.LineItem, 0, len(r.Lines))
	for _, line := range r.Lines {
		lines = append(lines, submission.LineItem{
			ProductID: line.ProductID,
			VariantID: line.VariantID,
			Color:     line.Color,
			Size:      line.Size,
			Quantity:  line.Quantity,
		})
	}
	return lines
}

func (s *Server) handleSubmit(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	var body submitRequest
	if err := decodeBody(req, &body); err != nil {
		writeJSON(writer, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	version, err := s.submissions.Submit(req.Context(), campaignID, actorID(req), body.toLines())
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusCreated, map[string]int{"version": version})
}

func (s *Server) handleSubmitOnBehalf(writer http.ResponseWriter, req *http.Request) {
	if !isManager(req) {
		writeError(writer, submission.ErrNotAuthorized)
		return
	}

	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}
	targetUserID, err := pathInt64(req, "userID")
	if err != nil {
		writeError(writer, err)
		return
	}

	var body submitRequest
	if err := decodeBody(req, &body); err != nil {
		writeJSON(writer, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	version, err := s.submissions.SubmitOnBehalf(req.Context(),
		campaignID, targetUserID, actorID(req), body.toLines())
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusCreated, map[string]int{"version": version})
}

func (s *Server) handleDeleteResponse(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}
	targetUserID, err := pathInt64(req, "userID")
	if err != nil {
		writeError(writer, err)
		return
	}

	err = s.submissions.DeleteResponse(req.Context(),
		campaignID, targetUserID, actorID(req), isManager(req))
	if err != nil {
		writeError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLatestResponse(writer http.ResponseWriter, req *http.Request) {
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

	lines, err := s.submissions.GetLatestResponse(req.Context(), campaignID, userID)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusOK, map[string]interface{}{
		"lines": toResponseLineViews(lines),
	})
}

func (s *Server) handleResponseVersions(writer http.ResponseWriter, req *http.Request) {
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

	versions, err := s.submissions.GetAllVersions(req.Context(), campaignID, userID)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusOK, map[string]interface{}{
		"versions": toVersionViews(versions),
	})
}
