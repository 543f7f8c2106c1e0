package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tapp-eng/campaign-core/model"
)

func newCachedCampaignTest() (*CachedCampaign, *CampaignMock) {
	inner := &CampaignMock{}
	cached := NewCachedCampaign(inner, 1024*1024, 10*time.Minute)
	return cached, inner
}

func cachedCampaignRow() model.Campaign {
	return model.Campaign{
		ID:     21,
		Name:   "Spring Kit",
		Slug:   "spring-kit",
		Status: model.CampaignStatusActive,
	}
}

func TestCachedCampaign_Get(t *testing.T) {
	cached, inner := newCachedCampaignTest()
	inner.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: cachedCampaignRow()}, nil
	}

	ctx := newContext()

	nullCampaign, err := cached.Get(ctx, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, nullCampaign.Valid)
	assert.Equal(t, "spring-kit", nullCampaign.Campaign.Slug)
	assert.Equal(t, 1, len(inner.GetCalls()))

	// second read served from cache
	nullCampaign, err = cached.Get(ctx, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, nullCampaign.Valid)
	assert.Equal(t, 1, len(inner.GetCalls()))
}

func TestCachedCampaign_Get_Missing_Not_Cached(t *testing.T) {
	cached, inner := newCachedCampaignTest()
	inner.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{}, nil
	}

	ctx := newContext()

	nullCampaign, err := cached.Get(ctx, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, nullCampaign.Valid)

	_, err = cached.Get(ctx, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(inner.GetCalls()))
}

func TestCachedCampaign_GetBySlug(t *testing.T) {
	cached, inner := newCachedCampaignTest()
	inner.GetBySlugFunc = func(ctx context.Context, slug string) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: cachedCampaignRow()}, nil
	}

	ctx := newContext()

	nullCampaign, err := cached.GetBySlug(ctx, "spring-kit")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, nullCampaign.Valid)

	_, err = cached.GetBySlug(ctx, "spring-kit")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(inner.GetBySlugCalls()))
}

func TestCachedCampaign_Update_Invalidates(t *testing.T) {
	cached, inner := newCachedCampaignTest()
	inner.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: cachedCampaignRow()}, nil
	}
	inner.GetBySlugFunc = func(ctx context.Context, slug string) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: cachedCampaignRow()}, nil
	}
	inner.UpdateFunc = func(ctx context.Context, campaign model.Campaign) error {
		return nil
	}

	ctx := newContext()

	_, err := cached.Get(ctx, 21)
	assert.Equal(t, nil, err)
	_, err = cached.GetBySlug(ctx, "spring-kit")
	assert.Equal(t, nil, err)

	err = cached.Update(ctx, cachedCampaignRow())
	assert.Equal(t, nil, err)

	// both keys dropped, next reads hit the inner repository again
	_, err = cached.Get(ctx, 21)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(inner.GetCalls()))

	_, err = cached.GetBySlug(ctx, "spring-kit")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(inner.GetBySlugCalls()))
}

func TestCachedCampaign_UpdateStatus_Invalidates_Slug_Key(t *testing.T) {
	cached, inner := newCachedCampaignTest()
	inner.GetFunc = func(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: cachedCampaignRow()}, nil
	}
	inner.GetBySlugFunc = func(ctx context.Context, slug string) (model.NullCampaign, error) {
		return model.NullCampaign{Valid: true, Campaign: cachedCampaignRow()}, nil
	}
	inner.UpdateStatusFunc = func(ctx context.Context, campaignID int64, status model.CampaignStatus) error {
		return nil
	}

	ctx := newContext()

	// warm both keys; the id key resolves the slug during invalidation
	_, err := cached.Get(ctx, 21)
	assert.Equal(t, nil, err)
	_, err = cached.GetBySlug(ctx, "spring-kit")
	assert.Equal(t, nil, err)

	err = cached.UpdateStatus(ctx, 21, model.CampaignStatusEnded)
	assert.Equal(t, nil, err)

	_, err = cached.GetBySlug(ctx, "spring-kit")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(inner.GetBySlugCalls()))
}
