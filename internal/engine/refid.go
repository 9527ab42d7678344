package engine

import (
	"strconv"
	"strings"
)

// chainSep joins ancestor names into the nesting-chain key
const chainSep = ">"

// DeriveID produces the short reference id for a snippet injection. The
// derivation mixes the message id, the canonical name as salt, and the full
// ancestor chain, so neither two snippets in the same message nor the same
// snippet at two nesting depths share an id. Ids only need to be stable and
// collision-free within a session, so a 32-bit rolling hash folded to
// base-36 is enough.
func DeriveID(messageID, name string, chain []string) string {
	key := messageID + "\x00" + name + "\x00" + strings.Join(chain, chainSep)

	h := uint32(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint32(key[i])
	}

	return strconv.FormatUint(uint64(h), 36)
}
