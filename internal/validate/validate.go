package validate

import (
	"fmt"
	"slices"
	"strings"

	"dexview/internal/catalog"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeInvalidID      = "invalid_id"
	codeDuplicateID    = "duplicate_id"
	codeMissingName    = "missing_name"
	codeDuplicateName  = "duplicate_name"
	codeNegativeValue  = "negative_measure"
	codeMissingTags    = "missing_tags"
	codeUnknownTag     = "unknown_tag"
	codeStatOutOfRange = "stat_out_of_range"
)

const maxBaseStat = 255

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	ID       int
	Entity   string
}

type Report struct {
	Issues []Issue
}

func (r *Report) Errors() []Issue {
	return r.filter(SeverityError)
}

func (r *Report) Warnings() []Issue {
	return r.filter(SeverityWarn)
}

func (r *Report) filter(severity Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Run checks a catalog before it is cached. Errors describe entries the
// engine cannot address reliably; warnings flag data that still browses.
func Run(entities []catalog.Entity) *Report {
	issues := make([]Issue, 0)

	seenIDs := make(map[int]bool, len(entities))
	seenNames := make(map[string]int, len(entities))

	for _, entity := range entities {
		name := strings.TrimSpace(entity.Name)

		if entity.ID <= 0 {
			issues = append(issues, issueFor(entity, SeverityError, codeInvalidID, fmt.Sprintf("id must be positive, got %d", entity.ID)))
		} else if seenIDs[entity.ID] {
			issues = append(issues, issueFor(entity, SeverityError, codeDuplicateID, "duplicate id"))
		}
		seenIDs[entity.ID] = true

		if name == "" {
			issues = append(issues, issueFor(entity, SeverityError, codeMissingName, "missing name"))
		} else {
			key := strings.ToLower(name)
			if first, ok := seenNames[key]; ok {
				issues = append(issues, issueFor(entity, SeverityError, codeDuplicateName, fmt.Sprintf("name already used by #%d", first)))
			} else {
				seenNames[key] = entity.ID
			}
		}

		if entity.Height < 0 || entity.Weight < 0 {
			issues = append(issues, issueFor(entity, SeverityError, codeNegativeValue, "height and weight must not be negative"))
		}

		issues = append(issues, validateTags(entity)...)
		issues = append(issues, validateStats(entity)...)
	}

	return &Report{Issues: issues}
}

func validateTags(entity catalog.Entity) []Issue {
	if len(entity.Tags) == 0 {
		return []Issue{issueFor(entity, SeverityWarn, codeMissingTags, "no tags; only unfiltered views will show it")}
	}

	var issues []Issue
	for _, tag := range entity.Tags {
		if !slices.Contains(catalog.KnownTags, tag) {
			issues = append(issues, issueFor(entity, SeverityWarn, codeUnknownTag, fmt.Sprintf("unknown tag: %s", tag)))
		}
	}
	return issues
}

func validateStats(entity catalog.Entity) []Issue {
	var issues []Issue
	for _, stat := range entity.Stats {
		if stat.Base < 0 || stat.Base > maxBaseStat {
			issues = append(issues, issueFor(entity, SeverityWarn, codeStatOutOfRange,
				fmt.Sprintf("%s base %d outside 0-%d", stat.Name, stat.Base, maxBaseStat)))
		}
	}
	return issues
}

func issueFor(entity catalog.Entity, severity Severity, code, message string) Issue {
	return Issue{
		Severity: severity,
		Code:     code,
		Message:  message,
		ID:       entity.ID,
		Entity:   entity.Name,
	}
}
