// SPDX-License-Identifier: MPL-2.0

package bundlefile

import (
	"fmt"
	"os"

	"github.com/RealOrangeOne/robot-bundler/pkg/kitversion"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses a bundle metadata file from the given path.
func Load(path string) (*BundleInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bundle file at %s: %w", path, err)
	}
	return ParseBytes(data)
}

// ParseBytes parses bundle metadata content from bytes. The document is
// decoded generically, checked against the closed schema, and only then
// lifted into the typed form; any failure aborts the whole load with no
// partial result. TOML syntax errors surface as the decoder's own
// *toml.DecodeError.
func ParseBytes(data []byte) (*BundleInfo, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	return newBundleInfo(doc), nil
}

// newBundleInfo lifts a schema-validated generic document into the typed
// aggregate. All assertions are guaranteed by validateDocument.
func newBundleInfo(doc map[string]any) *BundleInfo {
	bundle := doc["bundle"].(map[string]any)
	kit := doc["kit"].(map[string]any)
	wifi := doc["wifi"].(map[string]any)

	version, _ := kitversion.Parse(kit["version"].(string))

	return &BundleInfo{
		Bundle: BundleSection{
			Version: bundle["version"].(string),
		},
		Kit: KitSection{
			Name:    kit["name"].(string),
			Version: version,
		},
		WiFi: WiFiSection{
			SSID:    wifi["ssid"].(string),
			PSK:     wifi["psk"].(string),
			Enabled: wifi["enabled"].(bool),
			Region:  wifi["region"].(string),
		},
	}
}
