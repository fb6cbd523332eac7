package postgres

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an unanchored ILIKE pattern that matches term literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
