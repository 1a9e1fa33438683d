// Package testutil holds the .dd fixtures shared by the tests of several
// packages.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

//go:embed testdata/*.dd
var fixtures embed.FS

// ReadTestData returns the content of the named fixture.
func ReadTestData(name string) ([]byte, error) {
	data, err := fixtures.ReadFile(path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("read fixture %q: %w", name, err)
	}
	return data, nil
}

// Names lists every fixture in lexical order.
func Names() []string {
	entries, err := fs.ReadDir(fixtures, "testdata")
	if err != nil {
		panic(err)
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names
}
