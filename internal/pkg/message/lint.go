// Package message provides advisory linting of generated commit messages.
//
// The lint only ever produces warnings. The pipeline delivers the message
// verbatim either way; format compliance is driven by the instruction text,
// not enforced here.
package message

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidTypes contains the commit types the generation instruction allows.
var ValidTypes = []string{
	"feat", "fix", "refactor", "chore", "docs",
	"test", "build", "ci", "perf", "style",
}

// MaxSubjectLength is the advisory subject length bound.
const MaxSubjectLength = 72

// subjectRegex matches the expected "<type>: <summary>" shape.
var subjectRegex = regexp.MustCompile(`^([a-z]+):\s+(.+)$`)

// Parsed is the structured view of a generated message's first line.
type Parsed struct {
	Type    string
	Summary string
}

// Lint inspects a generated message and returns advisory warnings.
// An empty slice means the message matches the requested format.
func Lint(msg string) []string {
	var warnings []string

	msg = strings.TrimSpace(msg)
	if msg == "" {
		return []string{"message is empty"}
	}

	lines := strings.Split(msg, "\n")
	if len(lines) > 1 {
		warnings = append(warnings, fmt.Sprintf("message has %d lines, expected a single line", len(lines)))
	}

	subject := strings.TrimSpace(lines[0])

	matches := subjectRegex.FindStringSubmatch(subject)
	if matches == nil {
		warnings = append(warnings, fmt.Sprintf("subject %q does not match \"<type>: <summary>\"", subject))
		return warnings
	}

	if !isValidType(matches[1]) {
		warnings = append(warnings, fmt.Sprintf("unknown commit type %q", matches[1]))
	}

	if strings.HasSuffix(subject, ".") {
		warnings = append(warnings, "subject ends with a period")
	}

	if len(subject) > MaxSubjectLength {
		warnings = append(warnings, fmt.Sprintf("subject is %d characters, target is %d", len(subject), MaxSubjectLength))
	}

	return warnings
}

// Parse splits the first line of a message into type and summary.
// The second return value reports whether the line matched the expected shape
// with a known type.
func Parse(msg string) (Parsed, bool) {
	subject := strings.TrimSpace(strings.SplitN(strings.TrimSpace(msg), "\n", 2)[0])

	matches := subjectRegex.FindStringSubmatch(subject)
	if matches == nil || !isValidType(matches[1]) {
		return Parsed{Summary: subject}, false
	}

	return Parsed{
		Type:    matches[1],
		Summary: strings.TrimSpace(matches[2]),
	}, true
}

func isValidType(t string) bool {
	for _, valid := range ValidTypes {
		if t == valid {
			return true
		}
	}
	return false
}
