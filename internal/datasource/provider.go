package datasource

import "sync"

// Provider is the single-slot registry holding the process's active
// [DataSource]. Registration replaces the previous source atomically;
// callers that already took a reference keep using the old source until
// their calls finish, so a swap is never observable mid-operation.
type Provider struct {
	mu     sync.RWMutex
	active DataSource
}

// NewProvider returns a provider with no active source.
func NewProvider() *Provider {
	return &Provider{}
}

// Register installs source as the active implementation and returns the
// one it replaced, nil when this is the first registration. The caller
// owns the replaced source's shutdown.
func (p *Provider) Register(source DataSource) DataSource {
	p.mu.Lock()
	defer p.mu.Unlock()

	previous := p.active
	p.active = source
	return previous
}

// Active returns the currently registered source, or [ErrNoDataSource]
// when none has been registered yet.
func (p *Provider) Active() (DataSource, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.active == nil {
		return nil, ErrNoDataSource
	}
	return p.active, nil
}
