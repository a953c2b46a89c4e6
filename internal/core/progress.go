package core

import "github.com/chiru-app/chiru/internal/model"

// Progress returns completed/total as a percentage in [0, 100]. A zero
// total yields 0, never a division error.
func Progress(completed, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}

// SubjectProgress is the share of completed subtopics across all of the
// subject's topics.
func SubjectProgress(s model.Subject) float64 {
	var total, completed int
	for _, topic := range s.Topics {
		for _, st := range topic.SubTopics {
			total++
			if st.Completed {
				completed++
			}
		}
	}
	return Progress(completed, total)
}

// VideoProgress is the share of the video already watched.
func VideoProgress(v model.Video) float64 {
	if v.TotalDuration <= 0 {
		return 0
	}
	p := float64(v.WatchedDuration) / float64(v.TotalDuration) * 100
	if p > 100 {
		p = 100
	}
	return p
}
