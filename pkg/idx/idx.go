// Package idx generates ULID request identifiers. They sort by creation time,
// which keeps log lines for a burst of requests in order when grepped.
package idx

import (
	"crypto/rand"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

type ID string

// Zero is the empty ID.
const Zero ID = ""

// ErrInvalid reports a malformed ULID string.
var ErrInvalid = errors.New("idx: invalid ulid")

var (
	mu      sync.Mutex
	once    sync.Once
	entropy *ulid.MonotonicEntropy
)

// New returns a ULID for the current UTC time. Safe for concurrent use.
func New() ID {
	once.Do(func() {
		entropy = ulid.Monotonic(rand.Reader, 0)
	})

	mu.Lock()
	defer mu.Unlock()
	return ID(ulid.MustNew(ulid.Timestamp(time.Now().UTC()), entropy).String())
}

// Parse validates s as a ULID.
func Parse(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, ErrInvalid
	}
	if _, err := ulid.ParseStrict(s); err != nil {
		return Zero, ErrInvalid
	}
	return ID(s), nil
}

// FromHeader returns the caller supplied request id when it is a valid ULID,
// otherwise a freshly generated one.
func FromHeader(v string) ID {
	if id, err := Parse(v); err == nil {
		return id
	}
	return New()
}

func (id ID) String() string { return string(id) }
