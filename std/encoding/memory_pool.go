package encoding

import (
	"hash"

	"github.com/cespare/xxhash"
	"github.com/named-data/ndnb/std/types/sync_pool"
)

type hashPoolObj struct {
	hash hash.Hash64
}

var xxHashPool = sync_pool.New(
	func() *hashPoolObj { return &hashPoolObj{hash: xxhash.New()} },
	func(obj *hashPoolObj) { obj.hash.Reset() },
)

func xxHashPoolGet() *hashPoolObj {
	return xxHashPool.Get()
}

func xxHashPoolPut(obj *hashPoolObj) {
	xxHashPool.Put(obj)
}
