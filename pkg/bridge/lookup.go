package bridge

import (
	"fmt"
	"os/exec"
	"sync"
)

// pathCache memoizes PATH lookups so backend probing never repeats a scan.
var pathCache sync.Map

type lookupResult struct {
	path string
	err  error
}

// lookPath abstracts exec.LookPath for testability.
var lookPath = defaultLookPath

func defaultLookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// LookPath resolves a program name on PATH. Results, including misses, are
// memoized for the life of the process.
func LookPath(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty program name")
	}

	if cached, ok := pathCache.Load(name); ok {
		r := cached.(lookupResult)
		return r.path, r.err
	}

	path, err := lookPath(name)
	logf("probe %s: path=%q err=%v", name, path, err)

	actual, _ := pathCache.LoadOrStore(name, lookupResult{path: path, err: err})
	r := actual.(lookupResult)
	return r.path, r.err
}

// Available reports whether name resolves on PATH.
func Available(name string) bool {
	_, err := LookPath(name)
	return err == nil
}

// ClearPathCache clears the memoized lookups.
// Primarily useful for testing.
func ClearPathCache() {
	pathCache.Range(func(key, _ any) bool {
		pathCache.Delete(key)
		return true
	})
}
