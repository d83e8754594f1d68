package server

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/worthyretail/xray/schema"
)

// dashboardCache memoizes team dashboards. Each team carries a generation that
// submissions bump, and a dashboard loaded under an older generation is dropped.
type dashboardCache struct {
	mu          sync.Mutex
	entries     *lru.Cache[string, schema.TeamDashboard]
	generations map[string]uint64
}

func newDashboardCache(size int) (*dashboardCache, error) {
	entries, err := lru.New[string, schema.TeamDashboard](size)
	if err != nil {
		return nil, err
	}
	return &dashboardCache{entries: entries, generations: make(map[string]uint64)}, nil
}

// lookup returns the cached dashboard, or the generation to pass to put on a miss.
func (d *dashboardCache) lookup(code string) (schema.TeamDashboard, uint64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	dashboard, ok := d.entries.Get(code)
	return dashboard, d.generations[code], ok
}

// put caches dashboard only if no submission for code landed since gen was read.
func (d *dashboardCache) put(code string, gen uint64, dashboard schema.TeamDashboard) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.generations[code] != gen {
		return false
	}
	d.entries.Add(code, dashboard)
	return true
}

// invalidate drops the cached dashboard for code and bumps its generation.
func (d *dashboardCache) invalidate(code string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generations[code]++
	d.entries.Remove(code)
}
