package model

import (
	"database/sql"
	"time"
)

// Response is one selected product line belonging to one submission version.
// Rows are append-only; only the is_latest flag moves when a newer version is
// written.
type Response struct {
	ID         int64 `db:"id"`
	CampaignID int64 `db:"campaign_id"`
	UserID     int64 `db:"user_id"`

	ProductID int64          `db:"product_id"`
	VariantID int64          `db:"variant_id"`
	Color     sql.NullString `db:"color"`
	Size      sql.NullString `db:"size"`
	Quantity  int            `db:"quantity"`

	Version  int           `db:"version"`
	IsLatest bool          `db:"is_latest"`
	EditedBy sql.NullInt64 `db:"edited_by"`

	CreatedAt time.Time `db:"created_at"`
}

// ResponseVersion groups the line items of one submission version.
type ResponseVersion struct {
	Version   int
	CreatedAt time.Time
	EditedBy  sql.NullInt64
	Lines     []Response
}

// ProductTotal is one row of the per-product aggregation over latest
// responses.
type ProductTotal struct {
	ProductID     int64          `db:"product_id"`
	VariantID     int64          `db:"variant_id"`
	Color         sql.NullString `db:"color"`
	Size          sql.NullString `db:"size"`
	TotalQuantity int64          `db:"total_quantity"`
	UserCount     int64          `db:"user_count"`
}
