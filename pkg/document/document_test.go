package document_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confkit-io/confkit/pkg/document"
)

const sampleConfig = `const path = require("path");

module.exports = {
	entry: "./src/index.js",
	output: {
		filename: "main.js"
	},
	plugins: [new webpack.DefinePlugin()]
};
`

func TestParseModuleExports(t *testing.T) {
	doc, err := document.Parse(sampleConfig)
	require.NoError(t, err)
	require.NotNil(t, doc.Exports())

	output, err := doc.Section("output")
	require.NoError(t, err)
	assert.NotNil(t, output)
}

func TestParseBareObject(t *testing.T) {
	doc, err := document.Parse(`({ entry: "./src" });`)
	require.NoError(t, err)
	assert.NotNil(t, doc.Exports())
}

func TestParseNoExports(t *testing.T) {
	_, err := document.Parse(`const x = 1;`)
	assert.ErrorIs(t, err, document.ErrNotFound)
}

func TestParseBadSource(t *testing.T) {
	_, err := document.Parse(`module.exports = {`)
	assert.ErrorIs(t, err, document.ErrParse)
}

func TestSectionErrors(t *testing.T) {
	doc, err := document.Parse(sampleConfig)
	require.NoError(t, err)

	_, err = doc.Section("resolve")
	assert.ErrorIs(t, err, document.ErrNotFound)

	_, err = doc.Section("entry")
	assert.ErrorIs(t, err, document.ErrNotObject)
}

func TestSectionNames(t *testing.T) {
	doc, err := document.Parse(sampleConfig)
	require.NoError(t, err)
	assert.Equal(t, []string{"entry", "output", "plugins"}, doc.SectionNames())
}

func TestSectionSource(t *testing.T) {
	doc, err := document.Parse(sampleConfig)
	require.NoError(t, err)

	src, err := doc.SectionSource("entry")
	require.NoError(t, err)
	assert.Contains(t, src, "./src/index.js")

	_, err = doc.SectionSource("resolve")
	assert.ErrorIs(t, err, document.ErrNotFound)
}

func TestEnsureSection(t *testing.T) {
	doc, err := document.Parse(sampleConfig)
	require.NoError(t, err)

	resolve, err := doc.EnsureSection("resolve")
	require.NoError(t, err)
	require.NotNil(t, resolve)

	// Second call returns the same section instead of duplicating it.
	again, err := doc.EnsureSection("resolve")
	require.NoError(t, err)
	assert.Same(t, resolve, again)
}

func TestMergeSectionAndRender(t *testing.T) {
	doc, err := document.Parse(sampleConfig)
	require.NoError(t, err)

	desc := document.NewObject().
		Set("filename", document.String("bundle.js")).
		Set("publicPath", document.String("/assets/"))
	_, err = doc.MergeSection("output", desc, true)
	require.NoError(t, err)

	out := doc.Render()
	assert.Contains(t, out, "bundle.js")
	assert.Contains(t, out, "publicPath")
	assert.NotContains(t, out, "main.js", "reassigned value should be gone")
}

func TestAddPluginExistingArray(t *testing.T) {
	doc, err := document.Parse(sampleConfig)
	require.NoError(t, err)

	opts := document.NewObject().Set("DEBUG", document.Bool(true))
	applied, err := doc.AddPlugin("webpack.DefinePlugin", opts)
	require.NoError(t, err)
	assert.Equal(t, 1, applied.PluginsUpdated)

	out := doc.Render()
	assert.Contains(t, out, "DEBUG")
	assert.Equal(t, 1, strings.Count(out, "DefinePlugin"), "no duplicate plugin call")
}

func TestAddPluginCreatesArray(t *testing.T) {
	doc, err := document.Parse(`module.exports = { entry: "./src" };`)
	require.NoError(t, err)

	applied, err := doc.AddPlugin("webpack.optimize.DedupePlugin", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, applied.PluginsAdded)

	out := doc.Render()
	assert.Contains(t, out, "plugins")
	assert.Contains(t, out, "new webpack.optimize.DedupePlugin")
}

func TestAddPluginNonArrayProperty(t *testing.T) {
	doc, err := document.Parse(`module.exports = { plugins: "nope" };`)
	require.NoError(t, err)

	_, err = doc.AddPlugin("webpack.DefinePlugin", nil)
	assert.ErrorIs(t, err, document.ErrNotArray)
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "webpack.config.js")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	doc, err := document.Load(path)
	require.NoError(t, err)

	desc := document.NewObject().Set("mode", document.String("production"))
	_, err = doc.Merge(desc)
	require.NoError(t, err)

	require.NoError(t, doc.Save(path))

	// The saved file parses again and keeps the change.
	doc2, err := document.Load(path)
	require.NoError(t, err)
	assert.Contains(t, doc2.Render(), "production")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := document.Load(filepath.Join(t.TempDir(), "absent.js"))
	assert.Error(t, err)
}
