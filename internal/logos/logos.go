// Package logos maps college team names and aliases to logo URLs using
// an embedded CSV table. The table carries name aliases because the
// college data provider's numeric ids do not line up with the logo
// provider's.
package logos

import (
	"embed"
	"encoding/csv"
	"io"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
)

//go:embed data/cfb_team_logos.csv
var dataFS embed.FS

const dataPath = "data/cfb_team_logos.csv"

// Table is an immutable name-to-logo index. Safe for concurrent use.
type Table struct {
	byKey map[string]string
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// normalizeKey reduces a name form to a lowercase alphanumeric key:
// "Texas A&M" and "texas a+m" both become "texasandm".
func normalizeKey(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r == '&' || r == '+':
			b.WriteString("and")
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Load parses a logo CSV into a Table. Column order follows the header
// row; rows without a logo URL are skipped. The first alias to claim a
// key wins, so earlier rows shadow later ones.
func Load(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read logo csv header")
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	byKey := map[string]string{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read logo csv row")
		}

		logo := field(record, "logo")
		if logo == "" {
			continue
		}
		for _, name := range []string{
			field(record, "school"),
			field(record, "abbreviation"),
			field(record, "alt_name1"),
			field(record, "alt_name2"),
			field(record, "alt_name3"),
		} {
			key := normalizeKey(name)
			if key == "" {
				continue
			}
			if _, taken := byKey[key]; !taken {
				byKey[key] = logo
			}
		}
	}

	return &Table{byKey: byKey}, nil
}

// Default returns the table built from the embedded CSV. A missing or
// malformed embed degrades to an empty table: college rows simply render
// without logos.
func Default() *Table {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(dataPath)
		if err != nil {
			defaultTable = &Table{byKey: map[string]string{}}
			return
		}
		defer f.Close()

		table, err := Load(f)
		if err != nil {
			defaultTable = &Table{byKey: map[string]string{}}
			return
		}
		defaultTable = table
	})
	return defaultTable
}

// Lookup resolves a team name or alias to a logo URL.
func (t *Table) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	logo, ok := t.byKey[normalizeKey(name)]
	return logo, ok
}
