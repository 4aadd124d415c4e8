package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestSweepDropsIdleClients(t *testing.T) {
	limiters := &clientLimiters{
		clients: make(map[string]*client),
		rps:     rate.Limit(1),
		burst:   1,
	}

	limiters.get("ip:10.0.0.1")
	limiters.get("user:42")
	limiters.clients["ip:10.0.0.1"].lastSeen = time.Now().Add(-2 * clientIdleTTL)

	limiters.sweep(time.Now().Add(-clientIdleTTL))

	assert.Len(t, limiters.clients, 1)
	assert.Contains(t, limiters.clients, "user:42")

	// A swept client that comes back gets a fresh bucket.
	assert.NotNil(t, limiters.get("ip:10.0.0.1"))
	assert.Len(t, limiters.clients, 2)
}
