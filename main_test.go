package probetable

import (
	"strconv"
	"testing"
)

// collidingNames returns n distinct names whose hashes land on the same
// index modulo capacity.
func collidingNames(tb testing.TB, capacity, n int) []string {
	tb.Helper()

	byIndex := make(map[uint32][]string)
	for i := 0; ; i++ {
		name := "key-" + strconv.Itoa(i)
		idx := Hash(name) % uint32(capacity)

		byIndex[idx] = append(byIndex[idx], name)
		if len(byIndex[idx]) == n {
			return byIndex[idx]
		}
	}
}

// recoverError runs f and returns the error it panicked with, if any.
func recoverError(f func()) (err error) {
	defer func() {
		err, _ = recover().(error)
	}()

	f()

	return nil
}

func keyName(i int) string {
	return "k" + strconv.Itoa(i)
}
