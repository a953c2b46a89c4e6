package model

// Video is a watch-time tracker for a lecture or course video.
// Durations are in seconds; WatchedDuration never exceeds TotalDuration.
type Video struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Color             string   `json:"color"`
	TotalDuration     int      `json:"totalDuration"`
	WatchedDuration   int      `json:"watchedDuration"`
	TrackStreak       bool     `json:"trackStreak"`
	SessionTimestamps []string `json:"sessionTimestamps"`
	Link              string   `json:"link,omitempty"`
	Description       string   `json:"description,omitempty"`
}

// Clone returns a deep copy of the video.
func (v Video) Clone() Video {
	out := v
	out.SessionTimestamps = append([]string(nil), v.SessionTimestamps...)
	return out
}
