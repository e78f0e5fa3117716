package renderer

import "github.com/etnz/propfolio"

// Portfolio is a struct to represent portfolio metrics in json.
type Portfolio struct {
	// Model is true when the metrics are the model portfolio shown in place
	// of an empty one.
	Model           bool              `json:"model,omitempty"`
	TotalProperties int               `json:"totalProperties"`
	TotalValue      propfolio.Money   `json:"totalValue"`
	PotentialProfit propfolio.Money   `json:"potentialProfit"`
	AverageYield    propfolio.Percent `json:"averageYield"`
	PredictedGrowth propfolio.Percent `json:"predictedGrowth"`
	MonthlyRevenue  propfolio.Money   `json:"monthlyRevenue"`
}

// NewPortfolio aggregates properties into a new Portfolio struct.
func NewPortfolio(properties []propfolio.PropertySummary, cur string) *Portfolio {
	m := propfolio.Aggregate(properties)
	return &Portfolio{
		Model:           len(properties) == 0,
		TotalProperties: m.TotalProperties,
		TotalValue:      propfolio.M(m.TotalValue, cur),
		PotentialProfit: propfolio.M(m.PotentialProfit, cur),
		AverageYield:    m.AverageYield,
		PredictedGrowth: m.PredictedGrowth,
		MonthlyRevenue:  propfolio.M(m.MonthlyRevenue, cur),
	}
}
