package submission

import (
	"context"
	"database/sql"

	"github.com/tapp-eng/campaign-core/apperror"
	"github.com/tapp-eng/campaign-core/model"
)

type lineKey struct {
	productID int64
	variantID int64
	color     string
	size      string
}

// mergeLines collapses duplicates of the same product/variant/color/size by
// summing quantities, preserving first-seen order.
func mergeLines(lines []LineItem) []LineItem {
	index := make(map[lineKey]int, len(lines))
	merged := make([]LineItem, 0, len(lines))

	for _, line := range lines {
		key := lineKey{
			productID: line.ProductID,
			variantID: line.VariantID,
			color:     line.Color,
			size:      line.Size,
		}
		if pos, ok := index[key]; ok {
			merged[pos].Quantity += line.Quantity
			continue
		}
		index[key] = len(merged)
		merged = append(merged, line)
	}
	return merged
}

// validateSelections applies the campaign's selection rules and builds the
// ledger rows for one version. Quantity defaults to 1 when the campaign does
// not ask for it.
func (s *Service) validateSelections(
	ctx context.Context, campaign model.Campaign, userID, editedBy int64,
	lines []LineItem,
) ([]model.Response, error) {
	merged := mergeLines(lines)

	if len(merged) == 0 {
		return nil, apperror.SelectionInvalid(apperror.ReasonTooFewItems,
			"at least one item must be selected")
	}
	if campaign.SelectionLimit > 0 && len(merged) > campaign.SelectionLimit {
		return nil, apperror.SelectionInvalid(apperror.ReasonTooManyItems,
			"selection exceeds the campaign item limit")
	}
	if campaign.SelectionMin > 0 && len(merged) < campaign.SelectionMin {
		return nil, apperror.SelectionInvalid(apperror.ReasonTooFewItems,
			"selection is below the campaign item minimum")
	}

	rows := make([]model.Response, 0, len(merged))
	for _, line := range merged {
		quantity := line.Quantity
		if !campaign.AskQuantity {
			quantity = 1
		} else {
			if quantity == 0 {
				quantity = 1
			}
			if quantity < campaign.MinQuantity || quantity > campaign.MaxQuantity {
				return nil, apperror.SelectionInvalid(apperror.ReasonQuantityOutOfRange,
					"quantity is outside the allowed range")
			}
		}

		if campaign.AskColor && line.Color != "" && !campaign.ColorAllowed(line.Color) {
			return nil, apperror.SelectionInvalid(apperror.ReasonColorNotAllowed,
				"color is not in the campaign allow-list")
		}

		purchasable, err := s.cat.IsPurchasable(ctx, line.ProductID)
		if err != nil {
			return nil, apperror.Wrap(apperror.KindStorage, "catalog lookup failed", err)
		}
		if !purchasable {
			return nil, apperror.SelectionInvalid(apperror.ReasonProductNotAvailable,
				"product does not exist or is not purchasable")
		}

		rows = append(rows, model.Response{
			CampaignID: campaign.ID,
			UserID:     userID,
			ProductID:  line.ProductID,
			VariantID:  line.VariantID,
			Color:      nullString(line.Color),
			Size:       nullString(line.Size),
			Quantity:   quantity,
			EditedBy:   editedByNull(editedBy),
		})
	}
	return rows, nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{Valid: true, String: s}
}

func editedByNull(editedBy int64) sql.NullInt64 {
	if editedBy == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Valid: true, Int64: editedBy}
}
