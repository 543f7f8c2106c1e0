package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/repository"
	"github.com/tapp-eng/campaign-core/service/campaignmgmt"
)

type campaignRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	Type string `json:"type"`

	Department string `json:"department"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	Notes       string `json:"notes"`
	Description string `json:"description"`

	SelectionLimit int    `json:"selection_limit"`
	SelectionMin   int    `json:"selection_min"`
	EditPolicy     string `json:"edit_policy"`

	AskColor      *bool  `json:"ask_color"`
	ColorConfig   string `json:"color_config"`
	AllowedColors string `json:"allowed_colors"`
	AskSize       *bool  `json:"ask_size"`
	AskQuantity   *bool  `json:"ask_quantity"`
	MinQuantity   int    `json:"min_quantity"`
	MaxQuantity   int    `json:"max_quantity"`

	SendInvitation   *bool `json:"send_invitation"`
	SendConfirmation *bool `json:"send_confirmation"`
	SendReminder     *bool `json:"send_reminder"`
	ReminderHours    int   `json:"reminder_hours"`

	ProductIDs []int64 `json:"product_ids"`
}

func (r campaignRequest) toInput(creatorID int64) campaignmgmt.Input {
	return campaignmgmt.Input{
		Name: r.Name,
		Slug: r.Slug,
		Type: model.CampaignType(r.Type),

		CreatorID:  creatorID,
		Department: r.Department,

		StartDate: r.StartDate,
		EndDate:   r.EndDate,

		Notes:       r.Notes,
		Description: r.Description,

		SelectionLimit: r.SelectionLimit,
		SelectionMin:   r.SelectionMin,
		EditPolicy:     model.EditPolicy(r.EditPolicy),

		AskColor:      r.AskColor,
		ColorConfig:   model.ColorConfig(r.ColorConfig),
		AllowedColors: r.AllowedColors,
		AskSize:       r.AskSize,
		AskQuantity:   r.AskQuantity,
		MinQuantity:   r.MinQuantity,
		MaxQuantity:   r.MaxQuantity,

		SendInvitation:   r.SendInvitation,
		SendConfirmation: r.SendConfirmation,
		SendReminder:     r.SendReminder,
		ReminderHours:    r.ReminderHours,

		ProductIDs: r.ProductIDs,
	}
}

func (s *Server) handleCreateCampaign(writer http.ResponseWriter, req *http.Request) {
	var body campaignRequest
	if err := decodeBody(req, &body); err != nil {
		writeJSON(writer, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	campaign, err := s.campaigns.Create(req.Context(), body.toInput(actorID(req)))
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusCreated, toCampaignView(campaign))
}

func (s *Server) handleGetCampaign(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	campaign, err := s.campaigns.Get(req.Context(), campaignID)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusOK, toCampaignView(campaign))
}

func (s *Server) handleGetCampaignBySlug(writer http.ResponseWriter, req *http.Request) {
	campaign, err := s.campaigns.GetBySlug(req.Context(), chi.URLParam(req, "slug"))
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusOK, toCampaignView(campaign))
}

func (s *Server) handleUpdateCampaign(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	var body campaignRequest
	if err := decodeBody(req, &body); err != nil {
		writeJSON(writer, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	err = s.campaigns.Update(req.Context(), campaignID, actorID(req), body.toInput(actorID(req)))
	if err != nil {
		writeError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteCampaign(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	if err := s.campaigns.Delete(req.Context(), campaignID, actorID(req)); err != nil {
		writeError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSchedule(writer http.ResponseWriter, req *http.Request) {
	s.transition(writer, req, s.lifecycles.Schedule)
}

func (s *Server) handleEndNow(writer http.ResponseWriter, req *http.Request) {
	s.transition(writer, req, s.lifecycles.EndNow)
}

func (s *Server) handleArchive(writer http.ResponseWriter, req *http.Request) {
	s.transition(writer, req, s.lifecycles.Archive)
}

func (s *Server) transition(
	writer http.ResponseWriter, req *http.Request,
	action func(ctx context.Context, campaignID int64) error,
) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	if err := action(req.Context(), campaignID); err != nil {
		writeError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleIsOpen(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	open, err := s.lifecycles.IsOpen(req.Context(), campaignID)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusOK, map[string]bool{"is_open": open})
}

type productListRequest struct {
	ProductIDs []int64 `json:"product_ids"`
}

func (s *Server) handleSetProducts(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	var body productListRequest
	if err := decodeBody(req, &body); err != nil {
		writeJSON(writer, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return
	}

	if err := s.campaigns.SetProducts(req.Context(), campaignID, body.ProductIDs); err != nil {
		writeError(writer, err)
		return
	}
	writer.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetProducts(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	products, err := s.campaigns.GetProducts(req.Context(), campaignID)
	if err != nil {
		writeError(writer, err)
		return
	}

	productIDs := make([]int64, 0, len(products))
	for _, product := range products {
		productIDs = append(productIDs, product.ProductID)
	}
	writeJSON(writer, http.StatusOK, productListRequest{ProductIDs: productIDs})
}

func (s *Server) handleListActivity(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	filter := repository.ActivityFilter{
		CampaignID: campaignID,
		Action:     req.URL.Query().Get("action"),
		ActionType: model.ActivityType(req.URL.Query().Get("action_type")),
		Limit:      queryInt(req, "limit", 50),
		Offset:     queryInt(req, "offset", 0),
	}

	readonlyCtx := s.provider.Readonly(req.Context())
	activities, err := s.activities.List(readonlyCtx, filter)
	if err != nil {
		writeError(writer, err)
		return
	}
	total, err := s.activities.Count(readonlyCtx, filter)
	if err != nil {
		writeError(writer, err)
		return
	}

	writeJSON(writer, http.StatusOK, map[string]interface{}{
		"total":      total,
		"activities": toActivityViews(activities),
	})
}
