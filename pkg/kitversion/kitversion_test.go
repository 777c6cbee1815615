// SPDX-License-Identifier: MPL-2.0

package kitversion

import (
	"errors"
	"testing"
)

func TestParse_Accepts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  KitVersion
	}{
		{
			"plain",
			"2021.0.0.1",
			KitVersion{Epoch: 2021, Patch: 1},
		},
		{
			"dev",
			"2021.0.0.1dev",
			KitVersion{Epoch: 2021, Patch: 1, Dev: true},
		},
		{
			"commit",
			"2021.0.0.1:123456",
			KitVersion{Epoch: 2021, Patch: 1, BuildInfo: &BuildInfo{Commit: "123456"}},
		},
		{
			"dev_commit",
			"2021.0.0.1dev:123456",
			KitVersion{Epoch: 2021, Patch: 1, Dev: true, BuildInfo: &BuildInfo{Commit: "123456"}},
		},
		{
			"commit_branch",
			"2021.0.0.1:123456@master",
			KitVersion{Epoch: 2021, Patch: 1, BuildInfo: &BuildInfo{Commit: "123456", Branch: "master"}},
		},
		{
			"dev_commit_branch",
			"2021.0.0.1dev:123456@master",
			KitVersion{Epoch: 2021, Patch: 1, Dev: true, BuildInfo: &BuildInfo{Commit: "123456", Branch: "master"}},
		},
		{
			"all_components_nonzero",
			"2022.1.4.0",
			KitVersion{Epoch: 2022, Major: 1, Minor: 4},
		},
		{
			"width_boundaries",
			"65535.255.255.255",
			KitVersion{Epoch: 65535, Major: 255, Minor: 255, Patch: 255},
		},
		{
			"commit_min_length",
			"2021.0.0.1:abcde",
			KitVersion{Epoch: 2021, Patch: 1, BuildInfo: &BuildInfo{Commit: "abcde"}},
		},
		{
			"commit_max_length",
			"2021.0.0.1:" + "0123456789abcdef0123456789abcdef01234567",
			KitVersion{Epoch: 2021, Patch: 1, BuildInfo: &BuildInfo{Commit: "0123456789abcdef0123456789abcdef01234567"}},
		},
		{
			"branch_with_underscore_and_digits",
			"2021.0.0.1:123456@release_2021",
			KitVersion{Epoch: 2021, Patch: 1, BuildInfo: &BuildInfo{Commit: "123456", Branch: "release_2021"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_RejectsFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"three_components", "2021.0.0"},
		{"five_components", "2021.0.0.1.2"},
		{"missing_patch", "2021.0.0."},
		{"leading_garbage", "v2021.0.0.1"},
		{"trailing_garbage", "2021.0.0.1 "},
		{"embedded_whitespace", "2021.0 .0.1"},
		{"dev_misspelled", "2021.0.0.1DEV"},
		{"dev_separated", "2021.0.0.1-dev"},
		{"commit_too_short", "2021.0.0.1:abcd"},
		{"commit_too_long", "2021.0.0.1:" + "0123456789abcdef0123456789abcdef012345678"},
		{"commit_uppercase_hex", "2021.0.0.1:ABCDEF"},
		{"commit_non_hex", "2021.0.0.1:12345z"},
		{"branch_without_commit", "2021.0.0.1@master"},
		{"branch_with_dash", "2021.0.0.1:123456@my-branch"},
		{"empty_branch", "2021.0.0.1:123456@"},
		{"negative_component", "2021.0.0.-1"},
		{"not_a_version", "latest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want format error", tt.input)
			}
			if !errors.Is(err, ErrVersionFormat) {
				t.Errorf("Parse(%q) error = %v, want ErrVersionFormat", tt.input, err)
			}
		})
	}
}

func TestParse_RejectsOverflow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		component Component
	}{
		{"epoch_just_over", "65536.0.0.1", ComponentEpoch},
		{"epoch_far_over", "99999.0.0.1", ComponentEpoch},
		{"major_over", "2021.300.0.1", ComponentMajor},
		{"major_just_over", "2021.256.0.1", ComponentMajor},
		{"minor_over", "2021.0.256.1", ComponentMinor},
		{"patch_over", "2021.0.0.256", ComponentPatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want overflow error", tt.input)
			}
			if !errors.Is(err, ErrComponentOverflow) {
				t.Fatalf("Parse(%q) error = %v, want ErrComponentOverflow", tt.input, err)
			}
			var oe *ComponentOverflowError
			if !errors.As(err, &oe) {
				t.Fatalf("Parse(%q) error is not a ComponentOverflowError: %v", tt.input, err)
			}
			if oe.Component != tt.component {
				t.Errorf("Parse(%q) overflow component = %q, want %q", tt.input, oe.Component, tt.component)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"2021.0.0.1",
		"2021.0.0.1dev",
		"2021.0.0.1:123456",
		"2021.0.0.1dev:123456",
		"2021.0.0.1:123456@master",
		"2021.0.0.1dev:123456@master",
		"0.0.0.0",
		"65535.255.255.255",
		"2022.1.4.0",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			v, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", input, err)
			}
			if got := v.String(); got != input {
				t.Errorf("String() = %q, want %q", got, input)
			}
			back, err := Parse(v.String())
			if err != nil {
				t.Fatalf("re-Parse(%q) returned error: %v", v.String(), err)
			}
			if !back.Equal(v) {
				t.Errorf("re-Parse(%q) = %+v, want %+v", v.String(), back, v)
			}
		})
	}
}

// A branch without a commit cannot be produced by Parse: the branch capture
// group is nested inside the commit group, so "@branch" with no ":commit"
// fails the grammar outright. The rendering of a directly constructed value
// is still defined, mirroring the formatter's behavior.
func TestBranchWithoutCommit_UnreachableViaParse(t *testing.T) {
	t.Parallel()

	if _, err := Parse("2021.0.0.1@master"); !errors.Is(err, ErrVersionFormat) {
		t.Fatalf("expected format error for branch without commit, got: %v", err)
	}

	v := KitVersion{Epoch: 2021, Patch: 1, BuildInfo: &BuildInfo{Branch: "master"}}
	if got, want := v.String(), "2021.0.0.1:@master"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTextMarshaling(t *testing.T) {
	t.Parallel()

	v := KitVersion{Epoch: 2022, Major: 1, Minor: 4, Dev: true, BuildInfo: &BuildInfo{Commit: "abc123", Branch: "main"}}

	text, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() returned error: %v", err)
	}
	if string(text) != "2022.1.4.0dev:abc123@main" {
		t.Errorf("MarshalText() = %q, want %q", text, "2022.1.4.0dev:abc123@main")
	}

	var back KitVersion
	if err := back.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) returned error: %v", text, err)
	}
	if !back.Equal(v) {
		t.Errorf("UnmarshalText round-trip = %+v, want %+v", back, v)
	}

	var bad KitVersion
	if err := bad.UnmarshalText([]byte("nope")); !errors.Is(err, ErrVersionFormat) {
		t.Errorf("UnmarshalText(\"nope\") error = %v, want ErrVersionFormat", err)
	}
}

func TestBuildInfoString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		info BuildInfo
		want string
	}{
		{"commit_only", BuildInfo{Commit: "123456"}, "123456"},
		{"commit_and_branch", BuildInfo{Commit: "123456", Branch: "master"}, "123456@master"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.info.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
