package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/noah-isme/uta-ingest-api/internal/models"
)

// ParseInterval converts a free-text interval like "08:30 - 10:00 AM" into
// 24-hour "HH:MM" endpoints. The meridiem is read from the second segment and
// applied to both. Malformed text yields ok=false so the caller can degrade
// to "no schedule extracted" for the row.
func ParseInterval(raw string) (start, end string, ok bool) {
	parts := strings.Split(raw, "-")
	if len(parts) != 2 {
		return "", "", false
	}

	endPart := strings.TrimSpace(parts[1])
	lowerEnd := strings.ToLower(endPart)
	isPM := strings.Contains(lowerEnd, "pm")
	isAM := strings.Contains(lowerEnd, "am")

	startHour, startMin, ok := parseClock(parts[0], isAM, isPM)
	if !ok {
		return "", "", false
	}
	endHour, endMin, ok := parseClock(endPart, isAM, isPM)
	if !ok {
		return "", "", false
	}

	return fmt.Sprintf("%02d:%02d", startHour, startMin), fmt.Sprintf("%02d:%02d", endHour, endMin), true
}

func parseClock(segment string, isAM, isPM bool) (hour, minute int, ok bool) {
	pieces := strings.Split(strings.TrimSpace(segment), ":")
	if len(pieces) != 2 {
		return 0, 0, false
	}

	hour, ok = parseDigits(pieces[0])
	if !ok {
		return 0, 0, false
	}
	minute, ok = parseDigits(pieces[1])
	if !ok {
		return 0, 0, false
	}

	if isPM && hour != 12 {
		hour += 12
	}
	if isAM && hour == 12 {
		hour = 0
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// parseDigits extracts the numeric value of a clock piece, dropping any
// trailing meridiem letters ("00 AM" -> 0).
func parseDigits(piece string) (int, bool) {
	var digits strings.Builder
	for _, ch := range piece {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	if digits.Len() == 0 {
		return 0, false
	}
	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, false
	}
	return value, true
}

// extractSchedule builds a ManualSchedule from the row's day and hour fields,
// returning nil when either is blank or the interval does not parse.
func extractSchedule(day, hour string) *models.ManualSchedule {
	if day == "" || hour == "" {
		return nil
	}
	start, end, ok := ParseInterval(hour)
	if !ok {
		return nil
	}
	return &models.ManualSchedule{Day: day, Raw: hour, Start: start, End: end}
}
