package assets

import (
	"embed"
	"sort"
	"strings"
)

//go:embed sql/*.sql
var FS embed.FS

// Migrations lists the embedded migration file names in lexical order.
func Migrations() ([]string, error) {
	entries, err := FS.ReadDir("sql")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out, nil
}

// Migration returns the SQL text of one embedded migration.
func Migration(name string) (string, error) {
	b, err := FS.ReadFile("sql/" + name)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
