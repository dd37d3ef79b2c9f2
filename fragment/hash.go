// SPDX-License-Identifier: MIT

package fragment

import (
	"hash/maphash"

	mapset "github.com/deckarep/golang-set/v2"
)

// hashSeed is fixed for the life of the process so that equal fragments
// hash equally no matter where they were frozen.
var hashSeed = maphash.MakeSeed()

// hashPrime separates the source contribution from the label contribution,
// so <{x}, {}> and <{}, {x}> do not collide by construction.
const hashPrime = 31

// contentHash combines the set hashes of sources and labels.
func contentHash[T comparable](sources, labels mapset.Set[T]) uint64 {
	return setHash(sources)*hashPrime + setHash(labels)
}

// setHash is a commutative sum of mixed element hashes, hence independent
// of iteration order.
func setHash[T comparable](s mapset.Set[T]) uint64 {
	var h uint64
	if s == nil {
		return h
	}
	s.Each(func(v T) bool {
		h += mix64(maphash.Comparable(hashSeed, v))
		return false
	})

	return h
}

// mix64 is the splitmix64 finalizer; it spreads element hashes before the
// sum so that structured inputs do not cancel out.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return x
}
