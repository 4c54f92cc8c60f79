package converter

import "github.com/mrlokans/wallabag2karakeep/internal/entities"

func int64Ptr(v int64) *int64 { return &v }

func fullEntry() entities.WallabagEntry {
	return entities.WallabagEntry{
		ID:          int64Ptr(100),
		Title:       "How to Use Docker Compose for Development",
		URL:         "https://docs.docker.com/compose/gettingstarted/",
		Language:    "en",
		IsArchived:  true,
		IsStarred:   true,
		CreatedAt:   "2025-01-15 08:30:00",
		PublishedAt: "2024-12-01 00:00:00",
		PublishedBy: []string{"Docker Inc."},
		Tags: []entities.Tag{
			entities.BareTag("docker"),
			entities.BareTag("devops"),
			entities.BareTag("containers"),
		},
		Annotations: []entities.Annotation{
			{
				Text:  "Remember to use volume mounts for hot reload",
				Quote: "Use volume mounts to share code between your host and container",
			},
		},
	}
}

func minimalEntry() entities.WallabagEntry {
	return entities.WallabagEntry{
		URL:       "https://example.com",
		CreatedAt: "2025-01-01 00:00:00",
	}
}

func objectTagsEntry() entities.WallabagEntry {
	return entities.WallabagEntry{
		ID:         int64Ptr(1455),
		Title:      "The State of CSS 2025",
		URL:        "https://2025.stateofcss.com/en-US/",
		IsArchived: true,
		CreatedAt:  "2025-06-28 16:45:12",
		Tags: []entities.Tag{
			entities.ObjectTag(10, "css", "css"),
			entities.ObjectTag(15, "web-development", "web-development"),
			entities.ObjectTag(22, "survey", "survey"),
		},
	}
}
