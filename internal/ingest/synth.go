package ingest

import (
	"regexp"
	"strings"

	"github.com/noah-isme/uta-ingest-api/internal/models"
)

// LabSuffix marks generated and explicit codes of lab sections.
const LabSuffix = "-L"

var codeStopWords = map[string]struct{}{
	"and": {},
	"of":  {},
	"the": {},
	"in":  {},
}

var (
	sectionTokenRe = regexp.MustCompile(`\bSS\d+\s*`)
	placeholderRe  = regexp.MustCompile(`(?i)\s*\([^)]*(?:VF|NF|New)[^)]*\)`)
)

// GenerateCourseCode derives a display code from a subject name: the first
// letters of the first significant words (up to four) when the subject has
// more than one, otherwise the first three letters of the single word.
func GenerateCourseCode(subject string) string {
	words := make([]string, 0, 4)
	for _, w := range strings.Fields(subject) {
		if _, stop := codeStopWords[strings.ToLower(w)]; stop {
			continue
		}
		words = append(words, w)
	}

	if len(words) > 1 {
		var abbr strings.Builder
		for i, w := range words {
			if i == 4 {
				break
			}
			abbr.WriteRune([]rune(w)[0])
		}
		return strings.ToUpper(abbr.String())
	}

	single := subject
	if len(words) == 1 {
		single = words[0]
	}
	runes := []rune(single)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return strings.ToUpper(string(runes))
}

// EnsureLabSuffix appends the lab marker when the subject is a lab course and
// the code does not already carry it.
func EnsureLabSuffix(code, subject string) string {
	if isLabSubject(subject) && !strings.HasSuffix(code, LabSuffix) {
		return code + LabSuffix
	}
	return code
}

// Initials derives faculty initials: first letter of each name token,
// uppercased, truncated to three characters.
func Initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		b.WriteRune([]rune(token)[0])
		if b.Len() >= 3 {
			break
		}
	}
	initials := []rune(strings.ToUpper(b.String()))
	if len(initials) > 3 {
		initials = initials[:3]
	}
	return string(initials)
}

// CleanTeacherName strips trailing section-code tokens ("SS" + digits) and
// parenthetical vacant/new-faculty annotations from a raw teacher field.
func CleanTeacherName(name string) string {
	cleaned := sectionTokenRe.ReplaceAllString(name, "")
	cleaned = placeholderRe.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// IsPlaceholderTeacher reports whether the raw teacher value is one of the
// vacant-position markers that must not create a faculty record.
func IsPlaceholderTeacher(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	return lower == "nf" || lower == "new faculty"
}

func isLabSubject(subject string) bool {
	return strings.Contains(strings.ToLower(subject), "lab")
}

// DetectRoomType classifies a room as lab when its name or the associated
// subject mentions "lab", lecture otherwise.
func DetectRoomType(roomName, subject string) models.RoomType {
	if strings.Contains(strings.ToLower(roomName), "lab") || isLabSubject(subject) {
		return models.RoomTypeLab
	}
	return models.RoomTypeLecture
}
