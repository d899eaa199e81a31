package localexecutor

import (
	"runtime"
	"strings"
)

// mergeEnv layers overrides on top of base. Later entries win, and on
// Windows keys compare case-insensitively the way the OS treats them.
func mergeEnv(base, overrides []string) []string {
	if len(overrides) == 0 {
		return base
	}

	index := make(map[string]int, len(base)+len(overrides))
	out := make([]string, 0, len(base)+len(overrides))
	for _, kv := range append(append([]string{}, base...), overrides...) {
		key, _, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		norm := key
		if runtime.GOOS == "windows" {
			norm = strings.ToUpper(key)
		}
		if i, seen := index[norm]; seen {
			out[i] = kv
			continue
		}
		index[norm] = len(out)
		out = append(out, kv)
	}
	return out
}
