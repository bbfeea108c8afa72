package manifest

import (
	"encoding/binary"
	"io"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// formatVersion distinguishes this manifest format from every other cacheable
// output. It must change whenever the row ordering or field layout changes so
// that stale cache entries are invalidated.
var formatVersion = uuid.MustParse("9a2e1c46-7f3b-4d1a-9c0e-5d8f2b6a4e71")

// Fingerprint returns a fixed-size digest over the manifest's logical content:
// the format version, the workspace name, the row count and each row's fields
// in sorted order. Two manifests built from the same logical entries always
// fingerprint identically, however their inputs were assembled; the external
// build cache uses this as part of the action key.
func (m *Manifest) Fingerprint() []byte {
	h := blake3.New()
	h.Write(formatVersion[:])
	addString(h, m.workspaceName)
	addInt(h, len(m.rows))
	for _, row := range m.rows {
		addString(h, row.Repo)
		addString(h, row.ApparentName)
		addString(h, row.ResolvedName)
	}
	return h.Sum(nil)
}

// Strings are length-prefixed so that field boundaries can never collide.
func addString(w io.Writer, s string) {
	addInt(w, len(s))
	io.WriteString(w, s)
}

func addInt(w io.Writer, i int) {
	var b [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(b[:], uint64(i))
	w.Write(b[:n])
}
