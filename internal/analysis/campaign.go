package analysis

import "fmt"

const lowEffectivenessThreshold = 60

// CreativeAssessment pairs a creative's validation with its score
type CreativeAssessment struct {
	CreativeID string
	Validation TemplateValidation
	CES        CESScore
}

// CampaignSummary aggregates the assessments of a campaign's creatives
type CampaignSummary struct {
	AverageScore      float64
	Tier              Tier
	AverageConfidence float64
	InvalidCreatives  int
	Recommendations   []string
}

// SummarizeCampaign averages creative scores and derives recommendations.
// The tier is taken from the average score.
func SummarizeCampaign(assessments []CreativeAssessment) CampaignSummary {
	summary := CampaignSummary{Recommendations: []string{}}
	if len(assessments) == 0 {
		summary.Tier = TierFor(0)
		return summary
	}

	var scoreSum, confidenceSum float64
	for _, a := range assessments {
		scoreSum += a.CES.Score
		confidenceSum += a.CES.Confidence
		if !a.Validation.Valid {
			summary.InvalidCreatives++
		}
	}

	n := float64(len(assessments))
	summary.AverageScore = scoreSum / n
	summary.AverageConfidence = confidenceSum / n
	summary.Tier = TierFor(summary.AverageScore)

	if summary.AverageScore < lowEffectivenessThreshold {
		summary.Recommendations = append(summary.Recommendations,
			"Consider revising creative strategy to improve effectiveness")
	}
	if summary.InvalidCreatives > 0 {
		summary.Recommendations = append(summary.Recommendations,
			fmt.Sprintf("Fix validation issues in %d creative(s)", summary.InvalidCreatives))
	}

	return summary
}
