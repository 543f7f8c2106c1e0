package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tapp-eng/campaign-core/model"
	"github.com/tapp-eng/campaign-core/pkg/integration"
)

type responseTest struct {
	tc       *integration.TestCase
	provider Provider
}

func newResponseTest() *responseTest {
	tc := integration.NewTestCase()
	tc.Truncate("response")
	return &responseTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
	}
}

func newLine(campaignID, userID, productID int64, quantity, version int) model.Response {
	return model.Response{
		CampaignID: campaignID,
		UserID:     userID,
		ProductID:  productID,
		VariantID:  productID * 10,
		Color:      sql.NullString{Valid: true, String: "red"},
		Size:       sql.NullString{Valid: true, String: "M"},
		Quantity:   quantity,
		Version:    version,
		IsLatest:   true,
	}
}

func (rt *responseTest) insertVersion(t *testing.T, repo Response, lines []model.Response) {
	t.Helper()
	err := rt.provider.Transact(newContext(), func(ctx context.Context) error {
		if err := repo.MarkNotLatest(ctx, lines[0].CampaignID, lines[0].UserID); err != nil {
			return err
		}
		return repo.InsertLines(ctx, lines)
	})
	assert.Equal(t, nil, err)
}

func TestResponse_Versioning(t *testing.T) {
	rt := newResponseTest()

	repo := NewResponse()
	ctx := rt.provider.Readonly(newContext())

	// Latest Version before any submission
	err := rt.provider.Transact(newContext(), func(ctx context.Context) error {
		version, err := repo.GetLatestVersion(ctx, 21, 9)
		assert.Equal(t, nil, err)
		assert.Equal(t, 0, version)
		return nil
	})
	assert.Equal(t, nil, err)

	// Version 1 with two lines
	rt.insertVersion(t, repo, []model.Response{
		newLine(21, 9, 71, 2, 1),
		newLine(21, 9, 72, 1, 1),
	})

	// Version 2 with one line
	rt.insertVersion(t, repo, []model.Response{
		newLine(21, 9, 71, 3, 2),
	})

	err = rt.provider.Transact(newContext(), func(ctx context.Context) error {
		version, err := repo.GetLatestVersion(ctx, 21, 9)
		assert.Equal(t, nil, err)
		assert.Equal(t, 2, version)
		return nil
	})
	assert.Equal(t, nil, err)

	// Select Latest
	latest, err := repo.SelectLatest(ctx, 21, 9)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(latest))
	assert.Equal(t, 2, latest[0].Version)
	assert.Equal(t, int64(71), latest[0].ProductID)
	assert.Equal(t, 3, latest[0].Quantity)
	assert.Equal(t, true, latest[0].IsLatest)

	// Select All, newest first
	all, err := repo.SelectAll(ctx, 21, 9)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(all))
	assert.Equal(t, 2, all[0].Version)
	assert.Equal(t, 1, all[1].Version)
	assert.Equal(t, 1, all[2].Version)
	assert.Equal(t, false, all[1].IsLatest)
	assert.Equal(t, false, all[2].IsLatest)

	// Delete All
	var removed int64
	err = rt.provider.Transact(newContext(), func(ctx context.Context) (err error) {
		removed, err = repo.DeleteAll(ctx, 21, 9)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(3), removed)

	all, err = repo.SelectAll(ctx, 21, 9)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(all))
}

func TestResponse_By_Campaign(t *testing.T) {
	rt := newResponseTest()

	repo := NewResponse()
	ctx := rt.provider.Readonly(newContext())

	rt.insertVersion(t, repo, []model.Response{newLine(21, 9, 71, 2, 1)})
	rt.insertVersion(t, repo, []model.Response{newLine(21, 9, 72, 1, 2)})
	rt.insertVersion(t, repo, []model.Response{newLine(21, 10, 71, 1, 1)})
	rt.insertVersion(t, repo, []model.Response{newLine(22, 9, 71, 5, 1)})

	all, err := repo.SelectByCampaign(ctx, 21, false)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(all))

	latest, err := repo.SelectByCampaign(ctx, 21, true)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(latest))
	assert.Equal(t, int64(9), latest[0].UserID)
	assert.Equal(t, int64(72), latest[0].ProductID)
	assert.Equal(t, int64(10), latest[1].UserID)

	err = rt.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.DeleteByCampaign(ctx, 21)
	})
	assert.Equal(t, nil, err)

	all, err = repo.SelectByCampaign(ctx, 21, false)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(all))

	all, err = repo.SelectByCampaign(ctx, 22, false)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(all))
}

func TestResponse_Aggregation(t *testing.T) {
	rt := newResponseTest()

	repo := NewResponse()
	ctx := rt.provider.Readonly(newContext())

	total, err := repo.SumLatestQuantity(ctx, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), total)

	rt.insertVersion(t, repo, []model.Response{
		newLine(21, 9, 71, 2, 1),
		newLine(21, 9, 72, 1, 1),
	})
	rt.insertVersion(t, repo, []model.Response{newLine(21, 10, 71, 3, 1)})

	// superseded version must not be counted
	rt.insertVersion(t, repo, []model.Response{newLine(21, 9, 71, 1, 2)})

	totals, err := repo.AggregateByProduct(ctx, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(totals))
	assert.Equal(t, int64(71), totals[0].ProductID)
	assert.Equal(t, int64(4), totals[0].TotalQuantity)
	assert.Equal(t, int64(2), totals[0].UserCount)

	total, err = repo.SumLatestQuantity(ctx, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(4), total)
}
