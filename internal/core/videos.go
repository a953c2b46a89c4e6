package core

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/chiru-app/chiru/internal/model"
)

func findVideo(doc *model.AppData, id string) *model.Video {
	for i := range doc.Videos {
		if doc.Videos[i].ID == id {
			return &doc.Videos[i]
		}
	}
	return nil
}

func clampWatched(watched, total int) int {
	if watched < 0 {
		return 0
	}
	if watched > total {
		return total
	}
	return watched
}

func applyAddVideo(doc *model.AppData, c AddVideo) {
	name := strings.TrimSpace(c.Name)
	if name == "" || c.TotalDuration <= 0 {
		return
	}
	doc.Videos = append(doc.Videos, model.Video{
		ID:                uuid.NewString(),
		Name:              name,
		Color:             c.Color,
		TotalDuration:     c.TotalDuration,
		TrackStreak:       c.TrackStreak,
		SessionTimestamps: []string{},
		Link:              c.Link,
		Description:       c.Description,
	})
}

func applyUpdateVideo(doc *model.AppData, c UpdateVideo) {
	if strings.TrimSpace(c.Video.Name) == "" || c.Video.TotalDuration <= 0 {
		return
	}
	for i := range doc.Videos {
		if doc.Videos[i].ID == c.Video.ID {
			v := c.Video.Clone()
			v.WatchedDuration = clampWatched(v.WatchedDuration, v.TotalDuration)
			doc.Videos[i] = v
			return
		}
	}
}

// applyAddWatchTime advances the watched duration, clamped to the total,
// and logs today's session when the video tracks a streak. Repeated
// additions on the same day keep a single session entry.
func applyAddWatchTime(doc *model.AppData, c AddWatchTime, now time.Time) {
	v := findVideo(doc, c.VideoID)
	if v == nil || c.Seconds <= 0 {
		return
	}
	v.WatchedDuration = clampWatched(v.WatchedDuration+c.Seconds, v.TotalDuration)
	if !v.TrackStreak {
		return
	}
	today := DateKey(now)
	for _, ts := range v.SessionTimestamps {
		if day, ok := parseDay(ts); ok && DateKey(day) == today {
			return
		}
	}
	v.SessionTimestamps = append(v.SessionTimestamps, now.Format(time.RFC3339))
}

func applyMarkVideoComplete(doc *model.AppData, c MarkVideoComplete) {
	if v := findVideo(doc, c.VideoID); v != nil {
		v.WatchedDuration = v.TotalDuration
	}
}

func applyDeleteVideos(doc *model.AppData, c DeleteVideos) {
	doc.Videos = deleteByID(doc.Videos, func(v model.Video) string { return v.ID }, c.IDs)
}
