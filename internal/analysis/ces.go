package analysis

import "math"

// Tier buckets a creative effectiveness score
type Tier string

const (
	TierExceptional      Tier = "exceptional"
	TierHighlyEffective  Tier = "highly_effective"
	TierEffective        Tier = "effective"
	TierModerate         Tier = "moderate"
	TierNeedsImprovement Tier = "needs_improvement"
)

const cesBaseScore = 50.0

// CreativeSignals are the inputs to a creative effectiveness score.
// Quality scores are on a 0-100 scale, rates on 0-1. Zero means unknown.
type CreativeSignals struct {
	AIQualityScore  float64
	BrandVoiceScore float64
	HasMetrics      bool
	OpenRate        float64
	ClickRate       float64
	ConversionRate  float64
}

// CESScore is a creative effectiveness score with its tier
type CESScore struct {
	Score      float64
	Tier       Tier
	Confidence float64
}

// ScoreCreative computes the creative effectiveness score. Observed campaign
// metrics raise the confidence of the score from 0.6 to 0.9.
func ScoreCreative(signals CreativeSignals) CESScore {
	score := cesBaseScore
	score += signals.AIQualityScore * 0.2
	score += signals.BrandVoiceScore * 0.1

	confidence := 0.6
	if signals.HasMetrics {
		score += signals.OpenRate * 10
		score += signals.ClickRate * 15
		score += signals.ConversionRate * 20
		confidence = 0.9
	}

	score = math.Min(100, math.Max(0, score))

	return CESScore{
		Score:      score,
		Tier:       TierFor(score),
		Confidence: confidence,
	}
}

// TierFor maps a 0-100 score onto its tier
func TierFor(score float64) Tier {
	switch {
	case score >= 80:
		return TierExceptional
	case score >= 70:
		return TierHighlyEffective
	case score >= 60:
		return TierEffective
	case score >= 50:
		return TierModerate
	default:
		return TierNeedsImprovement
	}
}
