package local

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"task-assistant/internal/assistant"
	"task-assistant/internal/model"
)

// duePhraseRe finds "due [on|by|at] <when>"; group 1 is the date phrase.
var duePhraseRe = regexp.MustCompile(`(?i)\bdue\s+(?:(?:on|by|at)\s+)?(today|tomorrow|in\s+\d+\s+days?|\d{4}-\d{2}-\d{2}|\w+\s+\d{1,2}(?:,\s*\d{4})?)`)

// Priority keywords are matched as substrings of the lower-cased text.
var (
	highPriorityKeywords = []string{"urgent", "asap", "important", "high priority", "priority high"}
	lowPriorityKeywords  = []string{"low", "whenever", "low priority", "priority low"}
)

const titleTrimCutset = " \t\r\n,;:-"

// ParseFreeText turns free text into a TaskDraft. It never fails: unmatched or
// unresolvable phrases simply leave fields empty.
func (e *Engine) ParseFreeText(ctx context.Context, text string) (assistant.TaskDraft, error) {
	return e.parse(text), nil
}

func (e *Engine) parse(text string) assistant.TaskDraft {
	text = strings.TrimSpace(text)
	title := text

	var draft assistant.TaskDraft

	if loc := duePhraseRe.FindStringSubmatchIndex(text); loc != nil {
		phrase := normalizePhrase(text[loc[2]:loc[3]])
		if due, err := e.dates.Parse(phrase, e.now()); err == nil {
			due = due.UTC()
			draft.DueDate = &due
		}
		title = strings.TrimRight(text[:loc[0]], titleTrimCutset)
	}

	draft.Priority = inferPriority(text)

	if utf8.RuneCountInString(title) > assistant.MaxTitleLength {
		full := title
		draft.Description = &full
		title = strings.TrimRight(string([]rune(title)[:assistant.MaxTitleLength]), titleTrimCutset)
	}

	if title == "" {
		title = assistant.UntitledTask
	}
	draft.Title = title

	return draft
}

// inferPriority looks for priority keywords anywhere in the text; high wins over low.
func inferPriority(text string) *model.Priority {
	lower := strings.ToLower(text)

	var p model.Priority
	switch {
	case containsAny(lower, highPriorityKeywords):
		p = model.PriorityHigh
	case containsAny(lower, lowPriorityKeywords):
		p = model.PriorityLow
	default:
		return nil
	}
	return &p
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// normalizePhrase lower-cases the phrase and collapses whitespace so
// "March  5,2027" becomes "march 5, 2027".
func normalizePhrase(phrase string) string {
	phrase = strings.ToLower(strings.ReplaceAll(phrase, ",", ", "))
	return strings.Join(strings.Fields(phrase), " ")
}
