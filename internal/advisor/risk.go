package advisor

import "InvestSmart/internal/model"

// assessRisk maps a risk tolerance to its portfolio risk score and canned
// guidance. Unknown tolerances get the neutral score with moderate advice.
func assessRisk(riskLevel string) model.RiskAssessment {
	score, ok := riskScores[riskLevel]
	if !ok {
		score = defaultRiskScore
	}
	recs, ok := riskRecommendations[riskLevel]
	if !ok {
		recs = riskRecommendations["moderate"]
	}
	return model.RiskAssessment{Score: score, Recommendations: recs}
}
