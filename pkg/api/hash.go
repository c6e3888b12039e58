package api

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the document content.
// Line endings are normalized so a CRLF checkout hashes like LF.
// Path and modification time are not part of the hash.
func (d Document) Hash() string {
	h := blake3.New()
	h.Write([]byte(strings.ReplaceAll(d.Content, "\r\n", "\n")))
	sum := h.Sum(nil)
	return hex.EncodeToString(sum)
}
