package desktop

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sibikrish3000/nativedialog/internal/debug"
	session "github.com/sibikrish3000/nativedialog/internal/desktop"
	"github.com/sibikrish3000/nativedialog/pkg/bridge"
	"github.com/sibikrish3000/nativedialog/pkg/dialog"
)

// EnvBackend names the variable that overrides backend selection.
const EnvBackend = "NATIVEDIALOG_BACKEND"

var (
	resolveOnce  sync.Once
	resolved     dialog.Backend
	resolvedKind Kind
	resolveErr   error
)

// getenv, available and detect are overridden in tests.
var (
	getenv    = defaultGetenv
	available = bridge.Available
	detect    = session.Detect
)

func defaultGetenv(key string) string {
	return os.Getenv(key)
}

// Resolve returns the backend of this process. The first call selects it;
// later calls return the same backend, or the same error, without probing
// again.
func Resolve() (dialog.Backend, error) {
	resolveOnce.Do(func() {
		resolvedKind, resolveErr = choose(getenv, detect, available, staticPreference, platformKinds)
		if resolveErr != nil {
			debug.Printf("desktop: resolution failed: %v", resolveErr)
			return
		}
		resolved = newBackend(resolvedKind)
		debug.Printf("desktop: using %s backend", resolvedKind)
	})
	return resolved, resolveErr
}

// Active reports the kind of the resolved backend, resolving it if needed.
func Active() (Kind, error) {
	if _, err := Resolve(); err != nil {
		return KindNone, err
	}
	return resolvedKind, nil
}

// choose runs the selection algorithm: an explicit override, then the
// build-time preference, then the desktop hint ordering of the helper
// programs, the first one found on PATH winning.
func choose(getenv func(string) string, detect func() session.Hint, available func(string) bool, static Kind, offered []Kind) (Kind, error) {
	if name := getenv(EnvBackend); name != "" {
		k, ok := parseKind(strings.TrimSpace(name), offered)
		if !ok {
			return KindNone, fmt.Errorf("%w %q in %s (this platform offers %s)",
				dialog.ErrUnknownBackend, name, EnvBackend, joinKinds(offered))
		}
		debug.Printf("desktop: %s=%s", EnvBackend, k)
		return k, nil
	}

	if static != KindNone {
		return static, nil
	}

	hint := detect()
	candidates := helperOrder(hint)
	debug.Printf("desktop: hint=%s value=%q candidates=%s", hint.Family, hint.Value, joinKinds(candidates))
	for _, k := range candidates {
		if available(k.String()) {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("%w: neither %s nor %s was found on PATH; install one of them or set %s",
		dialog.ErrNoBackend, KindKDialog, KindZenity, EnvBackend)
}

// helperOrder lists the helper programs in probing order for a desktop hint.
func helperOrder(h session.Hint) []Kind {
	if h.PrefersKDE() {
		return []Kind{KindKDialog, KindZenity}
	}
	return []Kind{KindZenity, KindKDialog}
}

func joinKinds(kinds []Kind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// resetResolution clears the memoized backend for testing purposes.
func resetResolution() {
	resolveOnce = sync.Once{}
	resolved = nil
	resolvedKind = KindNone
	resolveErr = nil
}
