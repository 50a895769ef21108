package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	// Monotonic entropy keeps IDs from the same millisecond in generation order.
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a ULID string. Transactions and orders use it so that IDs sort by
// creation time, which the history cursor relies on as a tie-breaker.
func New() string {
	return NewAt(time.Now())
}

// NewAt returns a ULID for the given time.
func NewAt(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(t.UTC()), mono)
	if err != nil {
		// Only fails if the clock goes backwards past the entropy window.
		panic(err)
	}
	return id.String()
}

// NewUUID returns a random UUID for entities that do not need ordering.
func NewUUID() string {
	return uuid.NewString()
}
