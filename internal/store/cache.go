package store

import (
	"context"
	"io"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

const listingKey = "listing"

// cachedStore wraps a Store with a short-lived listing cache that is
// flushed by every mutating operation. Reads of document content are
// never cached.
type cachedStore struct {
	inner Store
	cache *gocache.Cache
}

// NewCached decorates inner with an invalidate-on-write listing cache.
func NewCached(inner Store) Store {
	return &cachedStore{
		inner: inner,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *cachedStore) List(ctx context.Context) ([]string, error) {
	if v, ok := s.cache.Get(listingKey); ok {
		return v.([]string), nil
	}
	names, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(listingKey, names, gocache.DefaultExpiration)
	return names, nil
}

func (s *cachedStore) Read(ctx context.Context, name string) ([]byte, error) {
	return s.inner.Read(ctx, name)
}

func (s *cachedStore) Create(ctx context.Context, name string, content []byte) error {
	err := s.inner.Create(ctx, name, content)
	if err == nil {
		s.cache.Flush()
	}
	return err
}

func (s *cachedStore) Write(ctx context.Context, name string, content []byte) error {
	err := s.inner.Write(ctx, name, content)
	if err == nil {
		s.cache.Flush()
	}
	return err
}

func (s *cachedStore) Rename(ctx context.Context, oldName, newName string) error {
	err := s.inner.Rename(ctx, oldName, newName)
	if err == nil {
		s.cache.Flush()
	}
	return err
}

func (s *cachedStore) Delete(ctx context.Context, name string) error {
	err := s.inner.Delete(ctx, name)
	if err == nil {
		s.cache.Flush()
	}
	return err
}

func (s *cachedStore) SaveUpload(ctx context.Context, name string, r io.Reader) error {
	err := s.inner.SaveUpload(ctx, name, r)
	if err == nil {
		s.cache.Flush()
	}
	return err
}
