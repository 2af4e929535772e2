package bridge

import "github.com/sibikrish3000/nativedialog/internal/debug"

func logf(format string, args ...any) {
	debug.Printf("bridge: "+format, args...)
}
