package export

import (
	"encoding/hex"
	"fmt"
	"sort"

	json "github.com/goccy/go-json"
	"golang.org/x/crypto/blake2b"

	"github.com/sisgea/unispec/internal/registry"
)

// Fingerprint returns the hex encoded BLAKE2b-256 digest of the compact
// JSON document of reg. Identical composition code yields identical
// fingerprints.
func Fingerprint(reg *registry.Registry) (string, error) {
	return FingerprintDoc(Document(reg))
}

// FingerprintDoc is Fingerprint for an already built document
func FingerprintDoc(doc Doc) (string, error) {
	canonical, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := blake2b.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
