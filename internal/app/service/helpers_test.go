package service_test

import (
	"strconv"
	"strings"
	"sync/atomic"
)

// fakeHasher stands in for bcrypt in use-case tests. Hashes embed a counter so
// two hashes of the same plaintext differ, like the real capability.
type fakeHasher struct {
	calls atomic.Int64
}

func (h *fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain + ":" + strconv.FormatInt(h.calls.Add(1), 10), nil
}

func (h *fakeHasher) Compare(plain, hash string) bool {
	return strings.HasPrefix(hash, "hashed:"+plain+":")
}
