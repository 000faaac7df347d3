// Package identity produces the opaque identifiers used across a checkout
// session: a stable lead id and a fresh idempotency token per payment
// attempt. Both are pure generators with no external I/O.
package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mrand "math/rand"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// monotonic distinguishes tokens generated within the same millisecond.
var monotonic uint64

// NewLeadID returns a cryptographically strong random lead identifier.
// Falls back to a timestamp+random concatenation if the strong source is
// unavailable.
func NewLeadID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		return fmt.Sprintf("lead_%d_%06d", time.Now().UnixNano(), mrand.Intn(1000000))
	}

	return id.String()
}

// NewEventID returns the tracking identifier attached to a payment
// authorization for cross-system reconciliation.
func NewEventID() string {
	return "evt_" + uuid.NewString()
}

// NewIdempotencyToken returns an opaque token scoped to one payment attempt.
// Wall-clock time, a monotonic counter and crypto random bytes together
// guarantee distinct tokens even across rapid repeated attempts in the same
// millisecond. The character set is restricted to [A-Za-z0-9_-] as required
// by the payment API.
func NewIdempotencyToken() string {
	seq := atomic.AddUint64(&monotonic, 1)

	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		// crypto source unavailable, degrade to math/rand
		mrand.Read(buf)
	}

	return fmt.Sprintf("ck_%d_%d_%s", time.Now().UnixMilli(), seq, hex.EncodeToString(buf))
}
