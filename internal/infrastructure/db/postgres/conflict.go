package postgres

import (
	"strings"

	"toolbox-api/internal/apperrors"
)

// uniqueMarkers maps substrings of driver unique-violation messages to
// the offending field reported to the client. SQLite reports
// "UNIQUE constraint failed: persons.email", PostgreSQL reports
// `duplicate key value violates unique constraint "uniq_persons_email"`.
var uniqueMarkers = []struct {
	marker string
	field  string
}{
	{"persons.email", "email"},
	{"uniq_persons_email", "email"},
	{"persons.alias", "alias"},
	{"uniq_persons_alias", "alias"},
	{"groups.name", "groupName"},
	{"groups_pkey", "groupName"},
	{"countries.code", "countryCode"},
	{"countries_pkey", "countryCode"},
	{"group_members", "membership"},
	{"tools_groups", "association"},
	{"persons_towns", "association"},
}

// translateConflict turns store unique-constraint violations into
// Conflict errors naming the offending field. Other errors pass through
// unchanged. This is what makes concurrent duplicate creates surface a
// 409 instead of silently overwriting.
func translateConflict(err error) error {
	if err == nil {
		return nil
	}

	message := err.Error()
	if !strings.Contains(message, "UNIQUE constraint failed") &&
		!strings.Contains(message, "duplicate key value") {
		return err
	}

	for _, m := range uniqueMarkers {
		if strings.Contains(message, m.marker) {
			return apperrors.Conflict(m.field)
		}
	}

	return apperrors.Conflict("record")
}
