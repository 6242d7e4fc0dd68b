package llm

// Backend binds a short backend identifier to a provider client and the
// provider-side model name. Client is nil when the provider has no
// configured credentials.
type Backend struct {
	ID     string
	Model  string
	Client Client
}

// Registry holds the configured backends in a stable order.
type Registry struct {
	backends map[string]Backend
	order    []string
}

// NewRegistry creates an empty backend registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]Backend)}
}

// Register adds a backend. Registering an existing id replaces it without
// changing its position.
func (r *Registry) Register(b Backend) {
	if _, ok := r.backends[b.ID]; !ok {
		r.order = append(r.order, b.ID)
	}
	r.backends[b.ID] = b
}

// Lookup returns the backend for an id.
func (r *Registry) Lookup(id string) (Backend, bool) {
	b, ok := r.backends[id]
	return b, ok
}

// IDs returns all registered backend identifiers in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
