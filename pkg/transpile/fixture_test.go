package transpile

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFixtures translates every testdata/fixtures/*.cs program through
// both dialects and snapshot-tests the result, the same way the teacher
// exercises whole programs through its own fixture suite.
func TestFixtures(t *testing.T) {
	paths, err := filepath.Glob("../../testdata/fixtures/*.cs")
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found under testdata/fixtures")
	}

	dialects := []struct {
		name    string
		dialect Dialect
	}{
		{name: "function", dialect: DialectFunction},
		{name: "type", dialect: DialectType},
	}

	for _, path := range paths {
		name := filepath.Base(path)
		for _, d := range dialects {
			t.Run(fmt.Sprintf("%s/%s", name, d.name), func(t *testing.T) {
				out, err := Transpile(Options{Path: path, Dialect: d.dialect})
				if err != nil {
					t.Fatalf("Transpile(%s, %s) error = %v", path, d.name, err)
				}
				snaps.MatchSnapshot(t, out)
			})
		}
	}
}
