// SPDX-License-Identifier: MPL-2.0

package bundlefile

import (
	"github.com/RealOrangeOne/robot-bundler/pkg/kitversion"
)

type (
	// BundleSection is the [bundle] table: the version of the software
	// bundle itself, a free-form string.
	BundleSection struct {
		Version string `toml:"version"`
	}

	// KitSection is the [kit] table: the kit's display name and its
	// version in the kitversion grammar.
	KitSection struct {
		Name    string                `toml:"name"`
		Version kitversion.KitVersion `toml:"version"`
	}

	// WiFiSection is the [wifi] table: network provisioning settings for
	// the kit's access point.
	WiFiSection struct {
		SSID    string `toml:"ssid"`
		PSK     string `toml:"psk"`
		Enabled bool   `toml:"enabled"`
		Region  string `toml:"region"`
	}

	// BundleInfo is a fully loaded bundle metadata document. Values are
	// constructed in one shot by Load or ParseBytes and are immutable
	// afterwards; concurrent readers are safe.
	BundleInfo struct {
		Bundle BundleSection `toml:"bundle"`
		Kit    KitSection    `toml:"kit"`
		WiFi   WiFiSection   `toml:"wifi"`
	}
)

// Equal reports whether two documents hold the same values.
func (b *BundleInfo) Equal(other *BundleInfo) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.Bundle == other.Bundle &&
		b.Kit.Name == other.Kit.Name &&
		b.Kit.Version.Equal(other.Kit.Version) &&
		b.WiFi == other.WiFi
}
