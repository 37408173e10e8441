package memcache_fx

import (
	"go.uber.org/fx"

	mem "ohrid/pkg/memcache"
)

var Module = fx.Provide(provideMemBlobs)

func provideMemBlobs() *mem.Blobs {
	return mem.NewBlobs()
}
