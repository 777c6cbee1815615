// SPDX-License-Identifier: MPL-2.0

package bundlefile

import (
	"github.com/pelletier/go-toml/v2"
)

// Marshal serializes the document back to TOML. The kit version is
// re-encoded through its canonical string form. Output is not guaranteed
// byte-identical to the text the value was loaded from, but re-parsing it
// always yields an equal value.
func (b *BundleInfo) Marshal() ([]byte, error) {
	return toml.Marshal(b)
}

// String returns the TOML form of the document. Encoding a legally
// constructed BundleInfo cannot fail; on the impossible error path this
// returns the empty string.
func (b *BundleInfo) String() string {
	data, err := b.Marshal()
	if err != nil {
		return ""
	}
	return string(data)
}
