// Package fingerprint derives deterministic content hashes used as cache
// keys for summaries and audio, and short stable IDs for articles.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Text returns a hex digest of the given content. The same input always
// produces the same key, so repeated requests for identical text map to the
// same cached artifact.
func Text(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// Audio returns the cache key for synthesized audio. Keys are namespaced by
// voice ID because the same text produces different audio per voice.
func Audio(voiceID, content string) string {
	return voiceID + "_" + Text(content)
}

// ArticleID returns a short stable identifier derived from an article's link
// and title, consistent across fetches of the same entry.
func ArticleID(link, title string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(link+"_"+title))
}
