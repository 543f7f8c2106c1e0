package httpapi

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

type statsView struct {
	CampaignID     int64  `json:"campaign_id"`
	Status         string `json:"status"`
	IsOpen         bool   `json:"is_open"`
	TotalInvited   int64  `json:"total_invited"`
	TotalSubmitted int64  `json:"total_submitted"`
	PendingCount   int64  `json:"pending_count"`

	ParticipationRate decimal.Decimal `json:"participation_rate"`
	TotalItems        int64           `json:"total_items"`

	AvgResponseHours *decimal.Decimal `json:"avg_response_hours,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}

func (s *Server) handleStats(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	stats, err := s.analytic.Stats(req.Context(), campaignID)
	if err != nil {
		writeError(writer, err)
		return
	}

	view := statsView{
		CampaignID:        stats.CampaignID,
		Status:            string(stats.Status),
		IsOpen:            stats.IsOpen,
		TotalInvited:      stats.TotalInvited,
		TotalSubmitted:    stats.TotalSubmitted,
		PendingCount:      stats.PendingCount,
		ParticipationRate: stats.ParticipationRate,
		TotalItems:        stats.TotalItems,
		GeneratedAt:       stats.GeneratedAt,
	}
	if stats.AvgResponseKnown {
		avg := stats.AvgResponseHours
		view.AvgResponseHours = &avg
	}
	writeJSON(writer, http.StatusOK, view)
}

func (s *Server) handleListResponses(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	latestOnly := req.URL.Query().Get("latest_only") != "false"

	responses, err := s.analytic.ListResponses(req.Context(), campaignID, latestOnly)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusOK, map[string]interface{}{
		"responses": toCampaignResponseViews(responses),
	})
}

func (s *Server) handleProductSummary(writer http.ResponseWriter, req *http.Request) {
	campaignID, err := pathInt64(req, "campaignID")
	if err != nil {
		writeError(writer, err)
		return
	}

	totals, err := s.analytic.ProductSummary(req.Context(), campaignID)
	if err != nil {
		writeError(writer, err)
		return
	}
	writeJSON(writer, http.StatusOK, map[string]interface{}{
		"products": toProductTotalViews(totals),
	})
}
