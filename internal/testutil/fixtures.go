// Package testutil provides shared fixtures for path grammar tests:
// declarative YAML case files and txtar corpus archives bundling many of
// them into a single reviewable file.
package testutil

import (
	"os"
	"testing"

	"go.yaml.in/yaml/v4"
	"golang.org/x/tools/txtar"
)

// Case is one declarative path scenario. Op selects the operation, the
// operand fields feed it, and exactly one of the Want fields carries the
// expectation. Backslash-heavy Windows paths should use single-quoted
// YAML scalars so no escaping is needed.
type Case struct {
	Name     string   `yaml:"name"`
	Op       string   `yaml:"op"`
	Platform string   `yaml:"platform"`
	Path     string   `yaml:"path"`
	Base     string   `yaml:"base"`
	From     string   `yaml:"from"`
	To       string   `yaml:"to"`
	Paths    []string `yaml:"paths"`
	Want     string   `yaml:"want"`
	WantList []string `yaml:"wantList"`
	WantBool bool     `yaml:"wantBool"`
	WantErr  bool     `yaml:"wantErr"`
}

// LoadCases reads a YAML case file holding a plain sequence of cases.
func LoadCases(t *testing.T, path string) []Case {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read case file %s: %v", path, err)
	}
	return unmarshalCases(t, path, data)
}

// LoadArchive reads a txtar corpus archive. Each file in the archive is
// a YAML case file; the result maps file names to their cases.
func LoadArchive(t *testing.T, path string) map[string][]Case {
	t.Helper()

	archive, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("failed to parse corpus archive %s: %v", path, err)
	}
	if len(archive.Files) == 0 {
		t.Fatalf("corpus archive %s holds no case files", path)
	}

	cases := make(map[string][]Case, len(archive.Files))
	for _, file := range archive.Files {
		cases[file.Name] = unmarshalCases(t, path+"/"+file.Name, file.Data)
	}
	return cases
}

func unmarshalCases(t *testing.T, origin string, data []byte) []Case {
	t.Helper()

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("failed to unmarshal cases from %s: %v", origin, err)
	}
	for i, c := range cases {
		if c.Name == "" {
			t.Fatalf("case %d in %s has no name", i, origin)
		}
		if c.Op == "" {
			t.Fatalf("case %q in %s has no op", c.Name, origin)
		}
	}
	return cases
}
