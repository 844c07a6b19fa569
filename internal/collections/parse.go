package collections

import (
	"log/slog"
	"strings"
)

const (
	entrySeparator = ";"
	aliasSeparator = "="
)

// Parse converts a raw collections setting into an alias to target map.
// A nil raw value produces an empty map. Entries without an "=" or with an
// empty alias or target are skipped. When an alias repeats, the last entry wins.
func Parse(raw *string) map[string]string {
	return parse(raw, nil)
}

func parse(raw *string, logger *slog.Logger) map[string]string {
	m := make(map[string]string)
	if raw == nil {
		return m
	}

	for _, entry := range strings.Split(*raw, entrySeparator) {
		trimmed := strings.TrimSpace(entry)
		if trimmed == "" {
			continue
		}

		alias, target, found := strings.Cut(trimmed, aliasSeparator)
		if !found {
			logDropped(logger, trimmed, "missing separator")
			continue
		}

		alias = strings.TrimSpace(alias)
		target = strings.TrimSpace(target)
		if alias == "" || target == "" {
			logDropped(logger, trimmed, "empty alias or target")
			continue
		}

		m[alias] = target
	}

	return m
}

func logDropped(logger *slog.Logger, entry, reason string) {
	if logger == nil {
		return
	}
	logger.Debug("dropping malformed collection entry",
		"entry", entry,
		"reason", reason)
}
