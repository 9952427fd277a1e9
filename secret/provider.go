package secret

import "context"

// Provider resolves secrets by reference string.
//
// Implementations must be safe for concurrent use and must not log secret values.
type Provider interface {
	Name() string
	Resolve(ctx context.Context, ref string) (string, error)
	Close() error
}

// StaticProvider serves secrets from a fixed map. Useful for tests and for
// embedding systems that load secrets through their own machinery.
type StaticProvider struct {
	name   string
	values map[string]string
}

// NewStaticProvider creates a provider named name serving values.
func NewStaticProvider(name string, values map[string]string) *StaticProvider {
	return &StaticProvider{name: name, values: values}
}

// Name returns the provider name.
func (p *StaticProvider) Name() string {
	return p.name
}

// Resolve looks up ref in the static map.
func (p *StaticProvider) Resolve(_ context.Context, ref string) (string, error) {
	v, ok := p.values[ref]
	if !ok {
		return "", ErrUnknownRef
	}
	return v, nil
}

// Close is a no-op.
func (p *StaticProvider) Close() error {
	return nil
}
