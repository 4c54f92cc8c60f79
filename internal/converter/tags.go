package converter

import (
	"strings"

	"github.com/mrlokans/wallabag2karakeep/internal/entities"
)

type TagsMode string

const (
	TagsModePreserve  TagsMode = "preserve"
	TagsModeLowercase TagsMode = "lowercase"
	TagsModeStrip     TagsMode = "strip"
)

// TagsModes lists the accepted values in the order shown in help texts.
var TagsModes = []TagsMode{TagsModePreserve, TagsModeLowercase, TagsModeStrip}

// ExtractLabels reduces wallabag tags of either shape to a list of unique,
// non-empty labels. First occurrences win. An unrecognised mode behaves
// like TagsModePreserve. The result is never nil.
func ExtractLabels(tags []entities.Tag, mode TagsMode) []string {
	labels := make([]string, 0, len(tags))
	if mode == TagsModeStrip {
		return labels
	}

	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		label, ok := tagLabel(tag)
		if !ok {
			continue
		}
		if mode == TagsModeLowercase {
			label = strings.ToLower(label)
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}

	return labels
}

func tagLabel(tag entities.Tag) (string, bool) {
	var label string
	switch tag.Kind {
	case entities.TagKindBare:
		label = tag.Label
	case entities.TagKindObject:
		if tag.HasLabel {
			label = tag.Label
		} else {
			label = tag.Slug
		}
	default:
		return "", false
	}

	label = strings.TrimSpace(label)
	return label, label != ""
}
