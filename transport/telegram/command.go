package telegram

import (
	"regexp"
	"strings"

	"github.com/doshicc/sirius-bot/internal/domain"
)

// Свободный текст названия — всё до завершающей пары "дата время".
var addRe = regexp.MustCompile(`^/add\s+(\S.*)\s+(\d{4}-\d{2}-\d{2})\s+(\d{2}:\d{2})`)

// parseAddCommand splits "/add <name> YYYY-MM-DD HH:MM" into its parts.
// ok is false when the message does not match the command shape; the
// date/time semantics are checked later, this is shape only.
func parseAddCommand(text string) (name, date, tm string, ok bool) {
	match := addRe.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return "", "", "", false
	}
	return match[1], match[2], match[3], true
}

// formatEventList renders reminders as "name — date time" lines under a header.
func formatEventList(header string, events []*domain.Event) string {
	var sb strings.Builder
	sb.WriteString(header)
	for _, e := range events {
		sb.WriteString("\n ")
		sb.WriteString(e.Name)
		sb.WriteString(" — ")
		sb.WriteString(e.Date)
		sb.WriteString(" ")
		sb.WriteString(e.Time)
	}
	return sb.String()
}
