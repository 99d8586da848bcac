package utils

import "time"

// HistoryDateLayout is how plan timestamps are shown in the history list.
const HistoryDateLayout = "2006-01-02 15:04:05"

func FormatDisplay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(HistoryDateLayout)
}
