package mem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"github.com/patrickmn/go-cache"
	"time"
	"travelstar/pkg/utils"
)

// CompletionStore memoises generated text by prompt.
type CompletionStore interface {
	Get(model, prompt string) (string, bool)
	Set(model, prompt, text string)
	ItemCount() int
}

type CompletionCache struct {
	items *cache.Cache
}

func NewCompletionCache(ttl time.Duration) *CompletionCache {
	return &CompletionCache{
		items: cache.New(ttl, 2*ttl),
	}
}

func cacheKey(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}

func (c *CompletionCache) Get(model, prompt string) (string, bool) {
	v, ok := c.items.Get(cacheKey(model, prompt))
	if !ok {
		return "", false
	}
	text, ok := v.(string)
	return text, ok
}

func (c *CompletionCache) Set(model, prompt, text string) {
	c.items.SetDefault(cacheKey(model, prompt), text)
}

func (c *CompletionCache) ItemCount() int {
	return c.items.ItemCount()
}

// CachedCompletionClient answers repeated prompts from the store and only
// calls the wrapped client on a miss. Failures are never stored.
type CachedCompletionClient struct {
	next  utils.CompletionClientInterface
	store CompletionStore
	onHit func()
}

func NewCachedCompletionClient(next utils.CompletionClientInterface, store CompletionStore, onHit func()) *CachedCompletionClient {
	if onHit == nil {
		onHit = func() {}
	}
	return &CachedCompletionClient{next: next, store: store, onHit: onHit}
}

func (c *CachedCompletionClient) Model() string { return c.next.Model() }

func (c *CachedCompletionClient) Generate(ctx context.Context, prompt string) (string, error) {
	if text, ok := c.store.Get(c.next.Model(), prompt); ok {
		c.onHit()
		return text, nil
	}

	text, err := c.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	c.store.Set(c.next.Model(), prompt, text)
	return text, nil
}
