package client

import "time"

// Server timestamps are UTC; display is Bangkok time via a fixed +7h shift,
// the same deliberate simplification the web client made (no tzdata).
const bangkokOffset = 7 * time.Hour

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// FormatDate renders DD/MM/YYYY, or "-" for empty or unparsable input.
func FormatDate(value string) string {
	if value == "" {
		return "-"
	}
	t, ok := parseTimestamp(value)
	if !ok {
		return "-"
	}
	return t.Add(bangkokOffset).Format("02/01/2006")
}

// FormatDateTime renders DD/MM/YYYY HH:MM:SS, or "-" for empty or
// unparsable input.
func FormatDateTime(value string) string {
	if value == "" {
		return "-"
	}
	t, ok := parseTimestamp(value)
	if !ok {
		return "-"
	}
	return t.Add(bangkokOffset).Format("02/01/2006 15:04:05")
}
