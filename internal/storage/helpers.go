package storage

import "strings"

func joinSet(clauses []string) string {
	return strings.Join(clauses, ", ")
}
