package services

import "strings"

const notSpecified = "Not specified"

// Section markers the report prompt asks the collaborator to emit.
const (
	markerStrengths      = "Strengths"
	markerImprovements   = "Areas for Improvement"
	markerRecommendation = "Recommendation"
)

// FeedbackSummary is the short feedback derived from the long-form report
// and persisted on the interview as JSON.
type FeedbackSummary struct {
	Strengths           string `json:"strengths"`
	AreasForImprovement string `json:"areas_for_improvement"`
}

// ExtractFeedbackSummary slices the report text between its literal section
// markers. This is deliberately plain text slicing: a missing marker yields
// "Not specified" for that field, never an error.
func ExtractFeedbackSummary(report string) FeedbackSummary {
	return FeedbackSummary{
		Strengths:           sliceBetween(report, markerStrengths, markerImprovements),
		AreasForImprovement: sliceBetween(report, markerImprovements, markerRecommendation),
	}
}

func sliceBetween(text, start, end string) string {
	startIdx := strings.Index(text, start)
	if startIdx == -1 {
		return notSpecified
	}
	rest := text[startIdx+len(start):]

	endIdx := strings.Index(rest, end)
	if endIdx == -1 {
		return notSpecified
	}

	section := strings.Trim(rest[:endIdx], " \t\n\r:#*-")
	if section == "" {
		return notSpecified
	}
	return section
}
