package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// hasherPool is a package-level pool of reusable HMAC-SHA256 hash instances.
// Must be initialized via InitHasherPool before Sign is used.
var hasherPool sync.Pool

// InitHasherPool initializes a sync.Pool of HMAC-SHA256 hashers, each
// configured with the given signing key. Pooling avoids re-allocating a
// hash.Hash per outbound request on hot transfer paths.
//
// Example usage:
//
//	utils.InitHasherPool("my-signing-secret")
func InitHasherPool(signingKey string) {
	hasherPool = sync.Pool{
		New: func() any {
			return hmac.New(sha256.New, []byte(signingKey))
		},
	}
}

// Sign computes an HMAC-SHA256 signature over the given request body using a
// hasher pulled from the global pool and returns it hex-encoded. The result
// is attached to outbound requests as the X-Signature header.
func Sign(body []byte) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write(body)
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}

// SignString computes an HMAC-SHA256 signature over data with the given key,
// bypassing the pool. Suitable for one-off signing where pool initialization
// is not desired (e.g. tests).
func SignString(data string, signingKey string) string {
	h := hmac.New(sha256.New, []byte(signingKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
