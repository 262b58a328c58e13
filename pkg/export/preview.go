package export

import (
	"sync"

	"github.com/google/uuid"
)

// Registry holds built documents in memory under disposable handles so a
// preview server can serve them by id. Callers release every handle they
// open exactly once.
type Registry struct {
	mu   sync.Mutex
	docs map[string]string
}

// NewRegistry creates an empty preview registry.
func NewRegistry() *Registry {
	return &Registry{docs: make(map[string]string)}
}

// Open stores a document and returns its handle id.
func (r *Registry) Open(doc string) string {
	id := uuid.NewString()
	r.mu.Lock()
	r.docs[id] = doc
	r.mu.Unlock()
	return id
}

// Get returns the document for a handle, or false for unknown or released
// handles.
func (r *Registry) Get(id string) (string, bool) {
	r.mu.Lock()
	doc, ok := r.docs[id]
	r.mu.Unlock()
	return doc, ok
}

// Release discards a handle. Releasing an unknown handle is a no-op.
func (r *Registry) Release(id string) {
	r.mu.Lock()
	delete(r.docs, id)
	r.mu.Unlock()
}

// Len reports how many handles are open.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.docs)
}
