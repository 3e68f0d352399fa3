package service

import (
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/extconfig/internal/store"
	"github.com/MKhiriev/extconfig/models"
)

// scopedKey applies the environment scoping rule to a decoded key. Plain keys
// pass through unchanged. A key "%<deploymentID>.<rest>" becomes <rest>; any
// other "%"-prefixed key, or any scoped key while deploymentID is empty, is
// dropped.
func scopedKey(key, deploymentID string) (string, bool) {
	if !strings.HasPrefix(key, models.ScopePrefix) {
		return key, true
	}
	if deploymentID == "" {
		return "", false
	}

	rest, ok := strings.CutPrefix(key, models.ScopePrefix+deploymentID+".")
	if !ok || rest == "" {
		return "", false
	}

	return rest, true
}

// mergeProperties writes values into dst with overwrite semantics and returns
// how many keys were written and how many scoped keys were dropped.
//
// Plain keys are written before scoped ones, so "%prod.x" beats "x" when both
// appear in the same source.
func mergeProperties(dst store.ConfigurationStore, values map[string]string, deploymentID string) (merged, dropped int) {
	keys := slices.Sorted(maps.Keys(values))
	slices.SortStableFunc(keys, func(a, b string) int {
		return boolToInt(strings.HasPrefix(a, models.ScopePrefix)) - boolToInt(strings.HasPrefix(b, models.ScopePrefix))
	})

	for _, key := range keys {
		target, ok := scopedKey(key, deploymentID)
		if !ok {
			dropped++
			continue
		}

		dst.Set(target, values[key])
		merged++
	}

	return merged, dropped
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// splitLocations splits a comma-separated descriptor value, trimming blanks
// and skipping empty entries.
func splitLocations(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func isURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}
