// Package discovery holds the project, question and transcript types of the
// discovery workflow. The backend owns all of these; the service only reads
// them and triggers backend operations.
package discovery

import (
	"regexp"
	"strconv"
	"time"
)

// Project is a discovery project as listed by the backend.
type Project struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

var trailingID = regexp.MustCompile(`[^A-Za-z0-9](\d+)$`)

// ProjectFromName builds a Project from a listed name. The backend lists
// names only: a trailing number after a separator ("acme-42") becomes the ID,
// otherwise the 1-based list position is used.
func ProjectFromName(name string, position int) Project {
	id := int64(position)
	if m := trailingID.FindStringSubmatch(name); m != nil {
		if n, err := strconv.ParseInt(m[1], 10, 64); err == nil && n > 0 {
			id = n
		}
	}
	return Project{ID: id, Name: name}
}
