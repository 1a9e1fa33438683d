package dd_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-dd"
	"github.com/KimNorgaard/go-dd/ast"
	"github.com/KimNorgaard/go-dd/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chart.dd")

	data, err := testutil.ReadTestData("chart.dd")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(src, data, 0o600))

	d, err := dd.ReadFile(src)
	require.NoError(t, err)
	require.Equal(t, "Camellia - Exit This Earth's Atomosphere [Expert]", d.FullName())

	d.Name = "Renamed"
	dst := filepath.Join(dir, "renamed.dd")
	require.NoError(t, dd.WriteFile(dst, d))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0o644), info.Mode().Perm()&^umask())

	back, err := dd.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, d, back)
	require.Equal(t, "Camellia - Exit This Earth's Atomosphere [Renamed]", back.FullName())
}

// umask returns the bits the process umask removes from 0644.
func umask() fs.FileMode {
	probe := filepath.Join(os.TempDir(), "dd-umask-probe")
	_ = os.Remove(probe)
	if err := os.WriteFile(probe, nil, 0o644); err != nil {
		return 0
	}
	defer func() { _ = os.Remove(probe) }()
	info, err := os.Stat(probe)
	if err != nil {
		return 0
	}
	return 0o644 &^ info.Mode().Perm()
}

func TestReadFile_Errors(t *testing.T) {
	_, err := dd.ReadFile(filepath.Join(t.TempDir(), "missing.dd"))
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "dd: read ")

	bad := filepath.Join(t.TempDir(), "bad.dd")
	require.NoError(t, os.WriteFile(bad, []byte("[Metadata]\nArtist A\n"), 0o600))
	_, err = dd.ReadFile(bad)
	var sectionErr *dd.MalformedSectionError
	require.ErrorAs(t, err, &sectionErr)
	require.Equal(t, 2, sectionErr.Line)
}

func TestWriteFile_Errors(t *testing.T) {
	dir := t.TempDir()

	err := dd.WriteFile(filepath.Join(dir, "no", "such", "dir.dd"), sample())
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Contains(t, err.Error(), "dd: write ")

	path := filepath.Join(dir, "bad.dd")
	d := sample()
	d.Title = "two\nlines"
	err = dd.WriteFile(path, d)
	var unencodable *dd.UnencodableError
	require.ErrorAs(t, err, &unencodable)
	_, statErr := os.Stat(path)
	require.ErrorIs(t, statErr, fs.ErrNotExist, "nothing is written when encoding fails")
}

func TestParseFormat(t *testing.T) {
	data, err := testutil.ReadTestData("chart.dd")
	require.NoError(t, err)

	doc, err := dd.Parse(data)
	require.NoError(t, err)
	require.Len(t, doc.Sections, 4)

	meta, ok := doc.Section("Metadata").Body.(*ast.KeyValueBody)
	require.True(t, ok)
	v, _ := meta.Get("Mapper")
	require.Equal(t, "Lunar", v)

	events, ok := doc.Section("Events").Body.(*ast.LineListBody)
	require.True(t, ok)
	require.Contains(t, events.Texts(), "9,20000,sparkle")

	meta.Set("Mapper", "Someone Else", 0)
	out, err := dd.Format(doc)
	require.NoError(t, err)

	var d dd.Difficulty
	require.NoError(t, dd.Unmarshal(out, &d, dd.UnknownEvents(dd.PreserveUnknownEvents)))
	require.Equal(t, "Someone Else", d.Mapper)
	require.Len(t, d.UnknownEvents, 1)

	again, err := dd.Parse(out)
	require.NoError(t, err)
	require.True(t, doc.Equal(again))
}

func TestFormat_Unencodable(t *testing.T) {
	doc := &ast.Document{Sections: []*ast.Section{
		ast.NewLineListSection("HitObjects", "[not a note]"),
	}}
	_, err := dd.Format(doc)
	var unencodable *dd.UnencodableError
	require.ErrorAs(t, err, &unencodable)
	require.Equal(t, "HitObjects", unencodable.Section)
}
