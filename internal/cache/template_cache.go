package cache

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/Clare-zewei/clickengineA-sub000/internal/domain"
	"github.com/Clare-zewei/clickengineA-sub000/internal/repository"
)

const (
	templateKeyPrefix = "funnel-template:"
	templateListKey   = "funnel-templates:all"
)

// TemplateCache is a read-through cache in front of a repository.TemplateStore.
// Cache failures are logged and fall through to the store.
type TemplateCache struct {
	store   repository.TemplateStore
	backend Backend
	ttl     time.Duration
	log     *zap.Logger
}

// NewTemplateCache wraps store with a cache on backend
func NewTemplateCache(store repository.TemplateStore, backend Backend, ttl time.Duration, log *zap.Logger) *TemplateCache {
	return &TemplateCache{store: store, backend: backend, ttl: ttl, log: log}
}

func templateKey(id string) string {
	return templateKeyPrefix + id
}

func (c *TemplateCache) List(ctx context.Context) ([]domain.FunnelTemplate, error) {
	var cached []domain.FunnelTemplate
	if c.lookup(ctx, templateListKey, &cached) {
		return cached, nil
	}

	templates, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}

	c.fill(ctx, templateListKey, templates)
	return templates, nil
}

func (c *TemplateCache) Get(ctx context.Context, id string) (*domain.FunnelTemplate, error) {
	var cached domain.FunnelTemplate
	if c.lookup(ctx, templateKey(id), &cached) {
		return &cached, nil
	}

	template, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.fill(ctx, templateKey(id), template)
	return template, nil
}

func (c *TemplateCache) Create(ctx context.Context, template *domain.FunnelTemplate) error {
	if err := c.store.Create(ctx, template); err != nil {
		return err
	}
	c.invalidate(ctx, templateListKey)
	return nil
}

func (c *TemplateCache) Update(ctx context.Context, template *domain.FunnelTemplate) error {
	if err := c.store.Update(ctx, template); err != nil {
		return err
	}
	c.invalidate(ctx, templateKey(template.ID), templateListKey)
	return nil
}

func (c *TemplateCache) Delete(ctx context.Context, id string) error {
	if err := c.store.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, templateKey(id), templateListKey)
	return nil
}

func (c *TemplateCache) lookup(ctx context.Context, key string, dest interface{}) bool {
	raw, ok, err := c.backend.Get(ctx, key)
	if err != nil {
		c.log.Warn("Template cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		c.invalidate(ctx, key)
		return false
	}
	return true
}

func (c *TemplateCache) fill(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.backend.Set(ctx, key, raw, c.ttl); err != nil {
		c.log.Warn("Template cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *TemplateCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.backend.Delete(ctx, keys...); err != nil {
		c.log.Warn("Template cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
