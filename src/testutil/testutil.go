// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Columns are the feature headers of the fixture dataset.
var Columns = []string{
	"Database Fundamentals", "Computer Architecture", "Distributed Computing Systems",
	"Networking", "Cyber Forensics", "Cyber Security", "Software Development",
	"Programming Skills", "Project Management", "Communication skills",
	"AI ML", "Software Engineering", "Data Science", "Troubleshooting skills",
	"Graphics Designing",
}

// DatasetCSV renders a separable fixture: rowsPerClass rows for each of the
// 16 roles. Role r rates feature r%15 at 5 and feature (r*7+3+r/15)%15 at 4; the
// rest vary between 0 and 2. One extra row with a blank cell is appended so
// loaders exercise row dropping.
func DatasetCSV(rowsPerClass int) string {
	var b strings.Builder
	b.WriteString(strings.Join(Columns, ","))
	b.WriteString(",Role\n")
	for role := 0; role < 16; role++ {
		primary := role % 15
		secondary := (role*7 + 3 + role/15) % 15
		for r := 0; r < rowsPerClass; r++ {
			cells := make([]string, 0, 16)
			for j := 0; j < 15; j++ {
				v := (j + r + role) % 3
				switch j {
				case primary:
					v = 5
				case secondary:
					v = 4
				}
				cells = append(cells, fmt.Sprint(v))
			}
			cells = append(cells, fmt.Sprint(role))
			b.WriteString(strings.Join(cells, ","))
			b.WriteString("\n")
		}
	}
	b.WriteString("1,2,3,,5,0,0,0,0,0,0,0,0,0,0,3\n")
	return b.String()
}

// WriteDataset writes DatasetCSV into a temp dir and returns its path.
func WriteDataset(t testing.TB, rowsPerClass int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "CleanedData.csv")
	if err := os.WriteFile(path, []byte(DatasetCSV(rowsPerClass)), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

// Answers returns 15 copies of label.
func Answers(label string) []string {
	out := make([]string, 15)
	for i := range out {
		out[i] = label
	}
	return out
}
