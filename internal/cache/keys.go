package cache

import "strings"

const (
	GlobalKeyPrefix = "studyassist"

	// textKeyVersion is bumped whenever extraction output changes.
	textKeyVersion = "v1"
)

// Key joins parts under the global prefix, skipping empty parts.
func Key(parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, GlobalKeyPrefix)
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return strings.Join(segments, ":")
}

// DocumentTextKey is the key of a document's extracted text.
func DocumentTextKey(documentID string) string {
	return Key("document", documentID, "text", textKeyVersion)
}
