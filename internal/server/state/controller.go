// Package state owns the per-browser workspaces of the console and the
// actions that change them.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/careadmin/internal/logging"
	"github.com/dmitrijs2005/careadmin/internal/server/files"
	"github.com/dmitrijs2005/careadmin/internal/server/i18n"
	"github.com/dmitrijs2005/careadmin/internal/server/profile"
	"github.com/dmitrijs2005/careadmin/internal/server/session"
	"github.com/google/uuid"
)

// Controller is the registry of workspaces. It is safe for concurrent use.
type Controller struct {
	mu         sync.RWMutex
	workspaces map[string]*Workspace

	catalog     *i18n.Catalog
	validator   *session.Validator
	transfer    files.Transfer
	defaultLang string
	logger      logging.Logger

	now   func() time.Time
	newID func() string
}

func NewController(catalog *i18n.Catalog, validator *session.Validator, transfer files.Transfer,
	defaultLang string, logger logging.Logger) *Controller {
	return &Controller{
		workspaces:  make(map[string]*Workspace),
		catalog:     catalog,
		validator:   validator,
		transfer:    transfer,
		defaultLang: catalog.Normalize(defaultLang),
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// Create starts a fresh anonymous workspace.
func (c *Controller) Create(ctx context.Context) *Workspace {
	w := &Workspace{
		id:       c.newID(),
		c:        c,
		lang:     c.defaultLang,
		gate:     session.NewGate(),
		editor:   profile.NewEditor(),
		stager:   files.NewStager(c.transfer),
		lastSeen: c.now(),
	}

	c.mu.Lock()
	c.workspaces[w.id] = w
	c.mu.Unlock()

	c.logger.Debug(ctx, "workspace created", "workspace", w.id)
	return w
}

// Get looks up a workspace and marks it as used.
func (c *Controller) Get(id string) (*Workspace, bool) {
	c.mu.RLock()
	w, ok := c.workspaces[id]
	c.mu.RUnlock()
	if ok {
		w.touch()
	}
	return w, ok
}

// Len is the number of live workspaces.
func (c *Controller) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.workspaces)
}

// Evict drops workspaces idle for longer than ttl and returns how many went.
func (c *Controller) Evict(ctx context.Context, ttl time.Duration) int {
	cutoff := c.now().Add(-ttl)

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for id, w := range c.workspaces {
		if w.idleSince().Before(cutoff) {
			delete(c.workspaces, id)
			n++
		}
	}
	if n > 0 {
		c.logger.Info(ctx, "evicted idle workspaces", "count", n, "remaining", len(c.workspaces))
	}
	return n
}

// RunEviction calls Evict every interval until ctx is done.
func (c *Controller) RunEviction(ctx context.Context, interval, ttl time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			c.Evict(ctx, ttl)
		}
	}
}
