package domain

import (
	"fmt"
	"strings"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

const internalExportPrefix = "./internal"

// CheckExportMap validates export map keys: every expected folder needs a
// "./<folder>/*" pattern and nothing under ./internal may be exported.
func CheckExportMap(keys []string, expectedFolders []string) []m.ExportProblem {
	present := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		present[key] = struct{}{}
	}

	var problems []m.ExportProblem

	for _, folder := range expectedFolders {
		pattern := fmt.Sprintf("./%s/*", folder)
		if _, ok := present[pattern]; !ok {
			problems = append(problems, m.ExportProblem("Missing export pattern: "+pattern))
		}
	}

	for _, key := range keys {
		if strings.HasPrefix(key, internalExportPrefix) {
			problems = append(problems, m.ExportProblem("Internal folder should not be exported: "+key))
		}
	}

	return problems
}
