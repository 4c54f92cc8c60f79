package converter

import (
	"strings"

	"github.com/mrlokans/wallabag2karakeep/internal/entities"
)

const noteSectionSeparator = "\n\n---\n\n"

// AnnotationsToText renders highlights as a blockquote followed by the
// user's note, with a blank line after every annotation that produced
// output. Annotations without quote and text are left out entirely.
func AnnotationsToText(annotations []entities.Annotation) string {
	lines := make([]string, 0, len(annotations)*3)

	for _, ann := range annotations {
		quote := strings.TrimSpace(ann.Quote)
		text := strings.TrimSpace(ann.Text)
		if quote != "" {
			lines = append(lines, "> "+quote)
		}
		if text != "" {
			lines = append(lines, "  Note: "+text)
		}
		if quote != "" || text != "" {
			lines = append(lines, "")
		}
	}

	return strings.TrimRight(strings.Join(lines, "\n"), " \t\r\n")
}

// BuildNote assembles the Karakeep note: the annotations first, then a
// metadata block, separated by a horizontal rule. Published is the raw
// wallabag value.
func BuildNote(entry entities.WallabagEntry) string {
	var sections []string

	if annotations := AnnotationsToText(entry.Annotations); annotations != "" {
		sections = append(sections, annotations)
	}

	var metadata []string
	if len(entry.PublishedBy) > 0 {
		metadata = append(metadata, "Author: "+strings.Join(entry.PublishedBy, ", "))
	}
	if entry.PublishedAt != "" {
		metadata = append(metadata, "Published: "+entry.PublishedAt)
	}
	if entry.Language != "" {
		metadata = append(metadata, "Language: "+entry.Language)
	}
	if entry.OriginURL != "" {
		metadata = append(metadata, "Origin URL: "+entry.OriginURL)
	}
	if len(metadata) > 0 {
		sections = append(sections, strings.Join(metadata, "\n"))
	}

	return strings.Join(sections, noteSectionSeparator)
}
