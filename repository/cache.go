package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/coocood/freecache"

	"github.com/tapp-eng/campaign-core/model"
)

// CachedCampaign is a read-through decorator over the Campaign repository.
// Lookups by id and by slug are cached; every write path invalidates the
// affected keys before delegating.
type CachedCampaign struct {
	inner Campaign
	cache *freecache.Cache

	ttlSeconds int
}

var _ Campaign = &CachedCampaign{}

// NewCachedCampaign creates the decorator with the given cache size in bytes.
func NewCachedCampaign(inner Campaign, cacheSize int, ttl time.Duration) *CachedCampaign {
	return &CachedCampaign{
		inner:      inner,
		cache:      freecache.NewCache(cacheSize),
		ttlSeconds: int(ttl / time.Second),
	}
}

func campaignIDKey(campaignID int64) []byte {
	return []byte("campaign:" + strconv.FormatInt(campaignID, 10))
}

func campaignSlugKey(slug string) []byte {
	return []byte("campaign_slug:" + slug)
}

func (c *CachedCampaign) getCached(key []byte) (model.NullCampaign, bool) {
	data, err := c.cache.Get(key)
	if err != nil {
		return model.NullCampaign{}, false
	}
	var campaign model.Campaign
	if err := json.Unmarshal(data, &campaign); err != nil {
		return model.NullCampaign{}, false
	}
	return model.NullCampaign{Valid: true, Campaign: campaign}, true
}

func (c *CachedCampaign) setCached(key []byte, campaign model.Campaign) {
	data, err := json.Marshal(campaign)
	if err != nil {
		return
	}
	_ = c.cache.Set(key, data, c.ttlSeconds)
}

// Invalidate drops both keys of a campaign. Co-located with every write.
func (c *CachedCampaign) Invalidate(campaignID int64, slug string) {
	c.cache.Del(campaignIDKey(campaignID))
	if slug != "" {
		c.cache.Del(campaignSlugKey(slug))
	}
}

// Get ...
func (c *CachedCampaign) Get(ctx context.Context, campaignID int64) (model.NullCampaign, error) {
	if cached, ok := c.getCached(campaignIDKey(campaignID)); ok {
		return cached, nil
	}
	nullCampaign, err := c.inner.Get(ctx, campaignID)
	if err != nil {
		return model.NullCampaign{}, err
	}
	if nullCampaign.Valid {
		c.setCached(campaignIDKey(campaignID), nullCampaign.Campaign)
	}
	return nullCampaign, nil
}

// GetBySlug ...
func (c *CachedCampaign) GetBySlug(ctx context.Context, slug string) (model.NullCampaign, error) {
	if cached, ok := c.getCached(campaignSlugKey(slug)); ok {
		return cached, nil
	}
	nullCampaign, err := c.inner.GetBySlug(ctx, slug)
	if err != nil {
		return model.NullCampaign{}, err
	}
	if nullCampaign.Valid {
		c.setCached(campaignSlugKey(slug), nullCampaign.Campaign)
	}
	return nullCampaign, nil
}

// SlugExists ...
func (c *CachedCampaign) SlugExists(ctx context.Context, slug string) (bool, error) {
	return c.inner.SlugExists(ctx, slug)
}

// Insert ...
func (c *CachedCampaign) Insert(ctx context.Context, campaign model.Campaign) (int64, error) {
	campaignID, err := c.inner.Insert(ctx, campaign)
	if err != nil {
		return 0, err
	}
	c.Invalidate(campaignID, campaign.Slug)
	return campaignID, nil
}

// Update ...
func (c *CachedCampaign) Update(ctx context.Context, campaign model.Campaign) error {
	if err := c.inner.Update(ctx, campaign); err != nil {
		return err
	}
	c.Invalidate(campaign.ID, campaign.Slug)
	return nil
}

// UpdateStatus ...
func (c *CachedCampaign) UpdateStatus(
	ctx context.Context, campaignID int64, status model.CampaignStatus,
) error {
	if err := c.inner.UpdateStatus(ctx, campaignID, status); err != nil {
		return err
	}
	c.invalidateByID(campaignID)
	return nil
}

// Delete ...
func (c *CachedCampaign) Delete(ctx context.Context, campaignID int64) error {
	c.invalidateByID(campaignID)
	return c.inner.Delete(ctx, campaignID)
}

// SetProducts ...
func (c *CachedCampaign) SetProducts(ctx context.Context, campaignID int64, productIDs []int64) error {
	return c.inner.SetProducts(ctx, campaignID, productIDs)
}

// GetProducts ...
func (c *CachedCampaign) GetProducts(ctx context.Context, campaignID int64) ([]model.CampaignProduct, error) {
	return c.inner.GetProducts(ctx, campaignID)
}

// ListDueToStart ...
func (c *CachedCampaign) ListDueToStart(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	return c.inner.ListDueToStart(ctx, now)
}

// ListDueToEnd ...
func (c *CachedCampaign) ListDueToEnd(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	return c.inner.ListDueToEnd(ctx, now)
}

// ListDueReminder ...
func (c *CachedCampaign) ListDueReminder(ctx context.Context, now time.Time) ([]model.Campaign, error) {
	return c.inner.ListDueReminder(ctx, now)
}

// SetReminderSent ...
func (c *CachedCampaign) SetReminderSent(ctx context.Context, campaignID int64, sentAt time.Time) error {
	if err := c.inner.SetReminderSent(ctx, campaignID, sentAt); err != nil {
		return err
	}
	c.invalidateByID(campaignID)
	return nil
}

// invalidateByID drops the slug key as well by resolving it from the id key
// when still cached.
func (c *CachedCampaign) invalidateByID(campaignID int64) {
	if cached, ok := c.getCached(campaignIDKey(campaignID)); ok {
		c.Invalidate(campaignID, cached.Campaign.Slug)
		return
	}
	c.cache.Del(campaignIDKey(campaignID))
}
