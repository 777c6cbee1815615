// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/RealOrangeOne/robot-bundler/pkg/bundlefile"
	"github.com/RealOrangeOne/robot-bundler/pkg/kitversion"
)

func TestForError_Classification(t *testing.T) {
	t.Parallel()

	wellFormed := `[bundle]
version = "2.0.0"

[kit]
name = "SR"
version = "2022.1.4.0"

[wifi]
ssid = "robot-ABC"
psk = "beeeeees"
enabled = true
region = "GB"
`

	tests := []struct {
		name string
		err  func(t *testing.T) error
		want Id
	}{
		{
			name: "file_not_found",
			err: func(t *testing.T) error {
				_, err := bundlefile.Load(filepath.Join(t.TempDir(), "missing.toml"))
				return err
			},
			want: BundleNotFoundId,
		},
		{
			name: "toml_syntax",
			err: func(t *testing.T) error {
				_, err := bundlefile.ParseBytes([]byte("[bundle\n"))
				return err
			},
			want: BundleSyntaxErrorId,
		},
		{
			name: "schema_unknown_field",
			err: func(t *testing.T) error {
				_, err := bundlefile.ParseBytes([]byte(wellFormed + "\n[extra]\nkey = 1\n"))
				return err
			},
			want: SchemaViolationId,
		},
		{
			name: "kit_version_grammar",
			err: func(t *testing.T) error {
				_, err := kitversion.Parse("not-a-version")
				return err
			},
			want: KitVersionInvalidId,
		},
		{
			name: "kit_version_inside_document",
			err: func(t *testing.T) error {
				doc := `[bundle]
version = "2.0.0"

[kit]
name = "SR"
version = "nope"

[wifi]
ssid = "robot-ABC"
psk = "beeeeees"
enabled = true
region = "GB"
`
				_, err := bundlefile.ParseBytes([]byte(doc))
				return err
			},
			want: KitVersionInvalidId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.err(t)
			if err == nil {
				t.Fatal("expected an error to classify")
			}
			got := ForError(err)
			if got == nil {
				t.Fatalf("ForError(%v) = nil, want issue %d", err, tt.want)
			}
			if got.Id() != tt.want {
				t.Errorf("ForError(%v) = issue %d, want %d", err, got.Id(), tt.want)
			}
		})
	}
}

func TestForError_UnknownErrorsReturnNil(t *testing.T) {
	t.Parallel()

	if got := ForError(errors.New("unrelated")); got != nil {
		t.Errorf("ForError(plain error) = issue %d, want nil", got.Id())
	}
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	if len(Values()) != 4 {
		t.Errorf("Values() returned %d issues, want 4", len(Values()))
	}
	for _, id := range []Id{BundleNotFoundId, BundleSyntaxErrorId, SchemaViolationId, KitVersionInvalidId} {
		issue := Get(id)
		if issue == nil {
			t.Fatalf("Get(%d) = nil", id)
		}
		if issue.MarkdownMsg() == "" {
			t.Errorf("issue %d has empty guidance", id)
		}
	}
}
