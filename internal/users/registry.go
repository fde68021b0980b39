// Package users holds the in-memory user registry.
package users

import (
	"context"
	"sync"
)

// User is a single registered person.
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SeedUsers returns the records every fresh registry starts with.
func SeedUsers() []User {
	return []User{
		{ID: 1, Name: "Vijay"},
		{ID: 2, Name: "Preeti"},
	}
}

// watchBuffer is how many unread users a watcher may lag behind before
// further events are dropped for it.
const watchBuffer = 16

// Registry is a thread-safe, append-only, ordered store of users. All public
// methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	users    []User
	nextID   int
	watchers map[chan User]struct{}
}

// NewRegistry creates a registry holding the given seed users in order.
// Ids are assigned after the highest seeded id.
func NewRegistry(seed ...User) *Registry {
	r := &Registry{
		users:    make([]User, 0, len(seed)),
		nextID:   1,
		watchers: make(map[chan User]struct{}),
	}
	for _, u := range seed {
		r.users = append(r.users, u)
		if u.ID >= r.nextID {
			r.nextID = u.ID + 1
		}
	}
	return r
}

// List returns a copy of all users in insertion order.
func (r *Registry) List() []User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]User, len(r.users))
	copy(out, r.users)
	return out
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// Create appends a new user with the next free id and returns it. An empty
// name is rejected with a *ValidationError wrapping ErrNameRequired.
func (r *Registry) Create(name string) (User, error) {
	if name == "" {
		return User{}, &ValidationError{Field: "name", Err: ErrNameRequired}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	u := User{ID: r.nextID, Name: name}
	r.nextID++
	r.users = append(r.users, u)

	for ch := range r.watchers {
		select {
		case ch <- u:
		default:
		}
	}
	return u, nil
}

// Watch returns a channel that receives every user created after the call.
// The channel is closed once ctx is done. A watcher that falls behind misses
// events instead of stalling Create.
func (r *Registry) Watch(ctx context.Context) <-chan User {
	ch := make(chan User, watchBuffer)

	r.mu.Lock()
	r.watchers[ch] = struct{}{}
	r.mu.Unlock()

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		delete(r.watchers, ch)
		close(ch)
		r.mu.Unlock()
	}()
	return ch
}
