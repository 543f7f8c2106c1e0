package submission

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tapp-eng/campaign-core/apperror"
)

var submitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "campaign",
	Subsystem: "submission",
	Name:      "submit_total",
	Help:      "Submission attempts by outcome.",
}, []string{"outcome"})

func observeSubmit(err error) {
	submitTotal.WithLabelValues(outcomeLabel(err)).Inc()
}

func outcomeLabel(err error) string {
	if err == nil {
		return "success"
	}
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return "not_found"
	case apperror.KindCampaignNotActive:
		return "not_active"
	case apperror.KindNotAParticipant:
		return "not_participant"
	case apperror.KindEditNotAllowed:
		return "edit_not_allowed"
	case apperror.KindSelectionInvalid:
		return "selection_invalid"
	case apperror.KindBusy:
		return "busy"
	default:
		return "storage"
	}
}
