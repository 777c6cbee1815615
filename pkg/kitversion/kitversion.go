// SPDX-License-Identifier: MPL-2.0

package kitversion

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	// ErrVersionFormat is the sentinel error wrapped by FormatError.
	ErrVersionFormat = errors.New("version was not in valid format")
	// ErrComponentOverflow is the sentinel error wrapped by ComponentOverflowError.
	ErrComponentOverflow = errors.New("version component overflow")

	// versionPattern matches the full kit version grammar, anchored at both
	// ends: four dot-separated decimal components, an optional "dev" marker,
	// and optional ":commit[@branch]" build metadata. The branch group only
	// exists inside the commit group, so a branch can never match without a
	// commit.
	versionPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)\.(\d+)(dev)?(?::([0-9a-f]{5,40})(?:@(\w+))?)?$`)
)

type (
	// Component identifies one of the four numeric fields of a KitVersion.
	Component string

	// BuildInfo carries optional build metadata: the commit the kit was
	// built from and, when known, the branch that commit was on.
	BuildInfo struct {
		// Commit is a 5-40 character lowercase hex commit hash.
		Commit string
		// Branch is the branch name, or "" when not recorded. A branch is
		// only meaningful alongside a commit; the grammar cannot produce
		// one without the other.
		Branch string
	}

	// KitVersion is a parsed kit version. Values are immutable once
	// constructed and safe for concurrent readers.
	KitVersion struct {
		Epoch     uint16
		Major     uint8
		Minor     uint8
		Patch     uint8
		Dev       bool
		BuildInfo *BuildInfo
	}

	// FormatError is returned when an input string does not match the kit
	// version grammar at all.
	FormatError struct {
		Value string
	}

	// ComponentOverflowError is returned when a numeric component matched
	// the grammar but does not fit its declared bit width.
	ComponentOverflowError struct {
		Component Component
		Value     string
	}
)

// The four numeric components, in grammar order.
const (
	ComponentEpoch Component = "epoch"
	ComponentMajor Component = "major"
	ComponentMinor Component = "minor"
	ComponentPatch Component = "patch"
)

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("version %q was not in valid format", e.Value)
}

// Unwrap returns ErrVersionFormat so callers can use errors.Is for programmatic detection.
func (e *FormatError) Unwrap() error { return ErrVersionFormat }

// Error implements the error interface.
func (e *ComponentOverflowError) Error() string {
	return fmt.Sprintf("unable to parse version %s value %q", e.Component, e.Value)
}

// Unwrap returns ErrComponentOverflow so callers can use errors.Is for programmatic detection.
func (e *ComponentOverflowError) Unwrap() error { return ErrComponentOverflow }

// Parse parses a kit version string. The whole input must match the
// grammar; there is no partial or best-effort result. A syntactically
// valid component that exceeds its bit width is reported per component
// via ComponentOverflowError rather than wrapping silently.
func Parse(value string) (KitVersion, error) {
	m := versionPattern.FindStringSubmatch(value)
	if m == nil {
		return KitVersion{}, &FormatError{Value: value}
	}

	// The regex guarantees decimal digits, so ParseUint can only fail on
	// range here.
	epoch, err := strconv.ParseUint(m[1], 10, 16)
	if err != nil {
		return KitVersion{}, &ComponentOverflowError{Component: ComponentEpoch, Value: m[1]}
	}
	major, err := strconv.ParseUint(m[2], 10, 8)
	if err != nil {
		return KitVersion{}, &ComponentOverflowError{Component: ComponentMajor, Value: m[2]}
	}
	minor, err := strconv.ParseUint(m[3], 10, 8)
	if err != nil {
		return KitVersion{}, &ComponentOverflowError{Component: ComponentMinor, Value: m[3]}
	}
	patch, err := strconv.ParseUint(m[4], 10, 8)
	if err != nil {
		return KitVersion{}, &ComponentOverflowError{Component: ComponentPatch, Value: m[4]}
	}

	v := KitVersion{
		Epoch: uint16(epoch),
		Major: uint8(major),
		Minor: uint8(minor),
		Patch: uint8(patch),
		Dev:   m[5] != "",
	}

	// Build info only exists when a commit matched. A branch without a
	// commit is unreachable through the grammar; the discard is kept for
	// parity with the capture-group layout.
	if m[6] != "" {
		info := &BuildInfo{Commit: m[6]}
		if m[7] != "" {
			info.Branch = m[7]
		}
		v.BuildInfo = info
	}

	return v, nil
}

// String returns the commit, with "@branch" appended when a branch is set.
func (b *BuildInfo) String() string {
	if b.Branch == "" {
		return b.Commit
	}
	return b.Commit + "@" + b.Branch
}

// String returns the canonical form of the version. It is total over any
// legally constructed value and is the exact inverse of a successful Parse.
func (v KitVersion) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d.%d", v.Epoch, v.Major, v.Minor, v.Patch)
	if v.Dev {
		sb.WriteString("dev")
	}
	if v.BuildInfo != nil {
		sb.WriteString(":")
		sb.WriteString(v.BuildInfo.String())
	}
	return sb.String()
}

// Equal reports whether two versions are the same, including build info.
func (v KitVersion) Equal(other KitVersion) bool {
	if v.Epoch != other.Epoch || v.Major != other.Major || v.Minor != other.Minor ||
		v.Patch != other.Patch || v.Dev != other.Dev {
		return false
	}
	switch {
	case v.BuildInfo == nil && other.BuildInfo == nil:
		return true
	case v.BuildInfo == nil || other.BuildInfo == nil:
		return false
	default:
		return *v.BuildInfo == *other.BuildInfo
	}
}

// MarshalText implements encoding.TextMarshaler so the version embeds into
// structured documents as a single string scalar.
func (v KitVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parse errors surface
// unchanged so the document codec can report them at the field's position.
func (v *KitVersion) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
