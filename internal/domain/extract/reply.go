package extract

import (
	"regexp"
	"strings"

	"github.com/winning-appliances/service-automation/internal/domain/classifier"
)

// Defaults used when a reply does not contain the field.
const (
	SerialNotProvided = "Not provided"
	ProblemSeeEmail   = "See customer email for details"
)

const fallbackLineCount = 3

// ReplyFields are the details a customer supplies when replying to the
// service request email.
type ReplyFields struct {
	CustomerEmail      string `json:"customerEmail"`
	SerialNumber       string `json:"serialNumber"`
	WarrantyStatus     string `json:"warrantyStatus"`
	ProblemDescription string `json:"problemDescription"`
}

var (
	emailPattern     = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	fromEmailPattern = regexp.MustCompile(`(?im)^\s*from:.*?([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)
	serialPattern    = regexp.MustCompile(`(?i)serial(?:\s*number)?\s*[:\s]\s*([A-Za-z0-9-]+)`)
	warrantyYes      = regexp.MustCompile(`(?i)warranty.*\byes\b`)
	warrantyNo       = regexp.MustCompile(`(?i)warranty.*\bno\b`)

	problemLabel = regexp.MustCompile(`(?i)^\s*(?:problem|issue|description)(?:\s+description)?\s*(?:[:\-]\s*(.*))?$`)
	knownLabel   = regexp.MustCompile(`(?i)^\s*(?:serial(?:\s+number)?|warranty(?:\s+status)?|from|to|subject|date|sent|cc|bcc|reply-to|problem(?:\s+description)?|issue|description|model(?:\s+number)?|photos?)\s*:`)
	headerLine   = regexp.MustCompile(`(?i)^\s*(?:from|to|subject|date|sent|cc|bcc|reply-to)\s*:`)
)

// Reply extracts reply fields from pasted email text. CustomerEmail is empty
// when no address can be found.
func Reply(text string) ReplyFields {
	return ReplyFields{
		CustomerEmail:      CustomerEmail(text),
		SerialNumber:       SerialNumber(text),
		WarrantyStatus:     WarrantyStatus(text),
		ProblemDescription: ProblemDescription(text),
	}
}

// CustomerEmail prefers the address on a From: line, then the first
// address anywhere in text.
func CustomerEmail(text string) string {
	if m := fromEmailPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return emailPattern.FindString(text)
}

// SerialNumber returns the labelled serial number, else SerialNotProvided
// ("Not provided").
func SerialNumber(text string) string {
	if m := serialPattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return SerialNotProvided
}

// WarrantyStatus checks for a yes answer before a no answer.
func WarrantyStatus(text string) string {
	switch {
	case warrantyYes.MatchString(text):
		return classifier.InWarranty
	case warrantyNo.MatchString(text):
		return classifier.OutOfWarranty
	default:
		return classifier.WarrantyUnknown
	}
}

// ProblemDescription returns the labelled problem text, else the first few
// non-header lines, else ProblemSeeEmail.
func ProblemDescription(text string) string {
	lines := splitLines(text)

	if problem := labelledProblem(lines); problem != "" {
		return problem
	}

	var body []string
	for _, line := range lines {
		if line == "" || headerLine.MatchString(line) {
			continue
		}
		body = append(body, line)
		if len(body) == fallbackLineCount {
			break
		}
	}
	if len(body) > 0 {
		return strings.Join(body, " ")
	}
	return ProblemSeeEmail
}

func labelledProblem(lines []string) string {
	for i, line := range lines {
		m := problemLabel.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		var parts []string
		if first := strings.TrimSpace(m[1]); first != "" {
			parts = append(parts, first)
		}
		for _, next := range lines[i+1:] {
			if next == "" || knownLabel.MatchString(next) {
				break
			}
			parts = append(parts, next)
		}
		if len(parts) > 0 {
			return strings.Join(parts, " ")
		}
	}
	return ""
}

func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}
