package request_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/loadgraph/loadgraph/request"
)

func TestParseEmpty(t *testing.T) {
	r := request.Parse("")
	assert.Equal(t, request.Empty, r.Tag)
}

func TestParseServerRelative(t *testing.T) {
	r := request.Parse("/etc/hosts")
	assert.Equal(t, request.ServerRelative, r.Tag)
	assert.Equal(t, "/etc/hosts", r.Path)
}

func TestParsePackageInternal(t *testing.T) {
	r := request.Parse("#internal/utils")
	assert.Equal(t, request.PackageInternal, r.Tag)
}

func TestParseRelative(t *testing.T) {
	r := request.Parse("./foo")
	assert.Equal(t, request.Relative, r.Tag)
	assert.Equal(t, "./foo", r.Path)

	r2 := request.Parse("../foo/bar")
	assert.Equal(t, request.Relative, r2.Tag)
}

func TestParseWindows(t *testing.T) {
	r := request.Parse(`C:\a\b`)
	assert.Equal(t, request.Windows, r.Tag)

	r2 := request.Parse(`\\server\share`)
	assert.Equal(t, request.Windows, r2.Tag)
}

func TestParseUriKeepsLeadingSlashInRemainder(t *testing.T) {
	r := request.Parse("https://x/y")
	assert.Equal(t, request.Uri, r.Tag)
	assert.Equal(t, "https:", r.Protocol)
	assert.Equal(t, "//x/y", r.Remainder)
}

func TestParseModuleWithScope(t *testing.T) {
	r := request.Parse("@scope/pkg/sub")
	assert.Equal(t, request.Module, r.Tag)
	assert.Equal(t, "@scope/pkg", r.ModuleName)
	assert.Equal(t, "/sub", r.Subpath)
}

func TestParseModuleWithoutSubpath(t *testing.T) {
	r := request.Parse("lodash")
	assert.Equal(t, request.Module, r.Tag)
	assert.Equal(t, "lodash", r.ModuleName)
	assert.Equal(t, "", r.Subpath)
}

func TestDisplayForms(t *testing.T) {
	assert.Equal(t, "empty", request.Display(request.Parse("")))
	assert.Equal(t, "module 'lodash'", request.Display(request.Parse("lodash")))
	assert.Equal(t, "module '@scope/pkg' with subpath '/sub'", request.Display(request.Parse("@scope/pkg/sub")))
	assert.Equal(t, "uri protocol 'https:' remainder '//x/y'", request.Display(request.Parse("https://x/y")))
	assert.Equal(t, "server-relative '/etc/hosts'", request.Display(request.Parse("/etc/hosts")))
}
