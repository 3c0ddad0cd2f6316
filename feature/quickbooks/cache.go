package quickbooks

import (
	"context"
	"sync"
	"time"

	"qb-sync/core/customer"

	"golang.org/x/sync/singleflight"
)

// IndexCache keeps the normalized QuickBooks customer set behind a TTL so
// the HTTP serving path does not open a QuickBooks session per request.
// Singleflight collapses concurrent rebuilds into one fetch.
type IndexCache struct {
	gateway *Gateway
	ttl     time.Duration

	mu    sync.RWMutex
	set   customer.Set
	built time.Time
	sf    singleflight.Group
}

// NewIndexCache creates a cache over the gateway. A zero TTL disables
// caching: every Get fetches fresh.
func NewIndexCache(gateway *Gateway, ttl time.Duration) *IndexCache {
	return &IndexCache{gateway: gateway, ttl: ttl}
}

// Get returns the cached customer set, rebuilding it when expired.
func (c *IndexCache) Get(ctx context.Context) (customer.Set, error) {
	c.mu.RLock()
	set, fresh := c.set, c.isFresh()
	c.mu.RUnlock()

	if fresh {
		return set, nil
	}

	result, err, _ := c.sf.Do("customers", func() (any, error) {
		// Double-check after winning the singleflight slot.
		c.mu.RLock()
		set, fresh := c.set, c.isFresh()
		c.mu.RUnlock()
		if fresh {
			return set, nil
		}

		rows, err := c.gateway.FetchCustomers(ctx)
		if err != nil {
			return nil, err
		}
		fetched, err := customer.Normalize(rows, customer.SourceQuickBooks)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.set = fetched
		c.built = time.Now()
		c.mu.Unlock()

		return fetched, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(customer.Set), nil
}

// Invalidate drops the cached set, forcing the next Get to fetch.
func (c *IndexCache) Invalidate() {
	c.mu.Lock()
	c.set = nil
	c.built = time.Time{}
	c.mu.Unlock()
}

// isFresh is called with c.mu held.
func (c *IndexCache) isFresh() bool {
	return c.ttl > 0 && c.set != nil && time.Since(c.built) <= c.ttl
}
