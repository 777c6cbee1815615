// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"os"

	"github.com/RealOrangeOne/robot-bundler/pkg/bundlefile"
	"github.com/RealOrangeOne/robot-bundler/pkg/kitversion"

	"github.com/charmbracelet/glamour"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	BundleNotFoundId Id = iota + 1
	BundleSyntaxErrorId
	SchemaViolationId
	KitVersionInvalidId
)

type MarkdownMsg string

// Issue pairs a failure class with rendered guidance for the user.
type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	bundleNotFoundIssue = &Issue{
		id: BundleNotFoundId,
		mdMsg: `
# Bundle file not found!

The bundle metadata file could not be read at the given path.

## Things you can try:
- Check the path for typos
- Mount or extract the bundle image before validating it
- Point at the example file to see the expected layout:
~~~
$ robot-bundler show example-bundle.toml
~~~`,
	}

	bundleSyntaxErrorIssue = &Issue{
		id: BundleSyntaxErrorId,
		mdMsg: `
# Failed to parse bundle file!

The file is not valid TOML.

## Common issues:
- Unterminated strings or table headers
- Missing '=' between a key and its value
- Values outside any [section]

## Things you can try:
- Check the decoder's line/column in the error message above
- Compare against the example layout:
~~~toml
[bundle]
version = "2.0.0"

[kit]
name = "Student Robotics"
version = "2022.1.4.0"

[wifi]
ssid = "robot-ABC"
psk = "beeeeees"
enabled = true
region = "GB"
~~~`,
	}

	schemaViolationIssue = &Issue{
		id: SchemaViolationId,
		mdMsg: `
# Bundle file does not match the schema!

The document parsed as TOML but deviates from the bundle schema. The
schema is closed: every listed field is required and nothing else is
allowed, in any section.

## Required fields:
- **bundle**: version (string)
- **kit**: name (string), version (kit version string)
- **wifi**: ssid, psk, region (strings), enabled (boolean)

## Things you can try:
- Check the field path in the error message above
- Remove any extra fields, even harmless-looking ones
- Make sure wifi.enabled is a bare boolean, not a quoted string`,
	}

	kitVersionInvalidIssue = &Issue{
		id: KitVersionInvalidId,
		mdMsg: `
# Invalid kit version!

The kit.version string does not match the kit version grammar:

~~~
<epoch>.<major>.<minor>.<patch>[dev][:<commit>[@<branch>]]
~~~

## Rules:
- All four numeric components are required (e.g. "2022.1.4.0")
- epoch fits 16 bits; major, minor and patch fit 8 bits each
- "dev" attaches directly to the patch, with no separator
- The commit is 5-40 lowercase hex characters; the branch is word
  characters only and always follows a commit`,
	}

	issues = map[Id]*Issue{
		bundleNotFoundIssue.Id():    bundleNotFoundIssue,
		bundleSyntaxErrorIssue.Id(): bundleSyntaxErrorIssue,
		schemaViolationIssue.Id():   schemaViolationIssue,
		kitVersionInvalidIssue.Id(): kitVersionInvalidIssue,
	}
)

func Values() []*Issue {
	values := maps.Values(issues)
	slices.SortFunc(values, func(a, b *Issue) int { return int(a.Id() - b.Id()) })
	return values
}

func Get(id Id) *Issue {
	return issues[id]
}

// ForError maps a bundle load failure to its guidance issue, or nil when
// the error does not belong to a known failure class.
func ForError(err error) *Issue {
	var decodeErr *toml.DecodeError
	switch {
	case errors.Is(err, os.ErrNotExist):
		return bundleNotFoundIssue
	case errors.Is(err, kitversion.ErrVersionFormat) || errors.Is(err, kitversion.ErrComponentOverflow):
		return kitVersionInvalidIssue
	case errors.Is(err, bundlefile.ErrMissingField) ||
		errors.Is(err, bundlefile.ErrUnknownField) ||
		errors.Is(err, bundlefile.ErrTypeMismatch):
		return schemaViolationIssue
	case errors.As(err, &decodeErr):
		return bundleSyntaxErrorIssue
	default:
		return nil
	}
}
