package database

import (
	"github.com/bradfitz/gomemcache/memcache"
)

// NewMemcached builds the client backing the account read-through cache.
func NewMemcached(server string) *memcache.Client {
	return memcache.New(server)
}
