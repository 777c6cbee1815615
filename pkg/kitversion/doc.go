// SPDX-License-Identifier: MPL-2.0

// Package kitversion implements the kit version identifier used by robot
// bundle metadata.
//
// A kit version is a four-component numeric identifier with an optional
// development marker and optional build metadata:
//
//	<epoch>.<major>.<minor>.<patch>[dev][:<commit>[@<branch>]]
//
// The epoch is a 16-bit value (typically a year); major, minor and patch
// are 8-bit values. The "dev" suffix marks a development build. Build
// metadata consists of a 5-40 character lowercase hex commit, optionally
// followed by "@" and a branch name (word characters only).
//
// [Parse] and [KitVersion.String] are exact inverses: any value produced
// by a successful Parse formats back to the input string. Inputs that do
// not match the grammar exactly are rejected; numeric components that
// exceed their declared width are a distinct overflow error rather than a
// silent wrap.
package kitversion
