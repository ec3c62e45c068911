package usecase

import (
	"image"
	"sync"

	"review-cloud/internal/data/entity"

	"github.com/google/uuid"
)

type imageKey struct {
	id      uuid.UUID
	variant entity.CloudVariant
}

// cloudStore keeps up to limit analysis results and their rendered images in
// memory. Once full, the oldest result is evicted together with its images.
type cloudStore struct {
	mu     sync.RWMutex
	limit  int
	items  map[uuid.UUID]*entity.CloudResult
	order  []uuid.UUID
	images map[imageKey]image.Image
}

func newCloudStore(limit int) *cloudStore {
	return &cloudStore{
		limit:  limit,
		items:  make(map[uuid.UUID]*entity.CloudResult),
		images: make(map[imageKey]image.Image),
	}
}

// Put stores result and returns the IDs it evicted.
func (c *cloudStore) Put(result *entity.CloudResult) []uuid.UUID {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[result.ID]; !exists {
		c.order = append(c.order, result.ID)
	}
	c.items[result.ID] = result

	var evicted []uuid.UUID
	for len(c.order) > c.limit {
		id := c.order[0]
		c.order = c.order[1:]
		delete(c.items, id)
		delete(c.images, imageKey{id, entity.VariantFiltered})
		delete(c.images, imageKey{id, entity.VariantRaw})
		evicted = append(evicted, id)
	}
	return evicted
}

func (c *cloudStore) Get(id uuid.UUID) (*entity.CloudResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.items[id]
	return result, ok
}

// Newest returns results newest first.
func (c *cloudStore) Newest() []*entity.CloudResult {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*entity.CloudResult, 0, len(c.order))
	for i := len(c.order) - 1; i >= 0; i-- {
		out = append(out, c.items[c.order[i]])
	}
	return out
}

func (c *cloudStore) Image(id uuid.UUID, variant entity.CloudVariant) (image.Image, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	img, ok := c.images[imageKey{id, variant}]
	return img, ok
}

// PutImage caches img only while its result is still stored.
func (c *cloudStore) PutImage(id uuid.UUID, variant entity.CloudVariant, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return
	}
	c.images[imageKey{id, variant}] = img
}
