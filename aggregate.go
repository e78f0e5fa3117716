package propfolio

// PropertySummary is the valuation of a single property, as provided by a
// property data source.
type PropertySummary struct {
	Price            float64 `json:"price"`
	PredictedValue   float64 `json:"predictedValue"`
	EstimatedRevenue float64 `json:"estimatedRevenue"` // monthly
}

// PortfolioMetrics summarizes a collection of properties.
//
// Every field is finite.
type PortfolioMetrics struct {
	TotalValue      float64 `json:"totalValue"`
	PotentialProfit float64 `json:"potentialProfit"`
	AverageYield    Percent `json:"averageYield"`
	PredictedGrowth Percent `json:"predictedGrowth"`
	MonthlyRevenue  float64 `json:"monthlyRevenue"`
	TotalProperties int     `json:"totalProperties"`
}

// ModelPortfolio returns the representative metrics shown in place of an
// empty portfolio.
func ModelPortfolio() PortfolioMetrics {
	return PortfolioMetrics{
		TotalValue:      3_500_000,
		PotentialProfit: 750_000,
		AverageYield:    9.5,
		PredictedGrowth: 14,
		MonthlyRevenue:  18_000,
		TotalProperties: 15,
	}
}

// Aggregate folds properties into portfolio metrics. An empty portfolio
// yields ModelPortfolio.
//
// A property without price does not contribute to the average yield or
// growth, but still counts in the number of properties.
func Aggregate(properties []PropertySummary) PortfolioMetrics {
	if len(properties) == 0 {
		return ModelPortfolio()
	}

	var m PortfolioMetrics
	for _, p := range properties {
		m.TotalValue += p.Price
		m.PotentialProfit += p.PredictedValue - p.Price
		m.AverageYield += Yield(p.EstimatedRevenue*12, p.Price).finite()
		m.PredictedGrowth += Yield(p.PredictedValue-p.Price, p.Price).finite()
		m.MonthlyRevenue += p.EstimatedRevenue
		m.TotalProperties++
	}
	if m.TotalProperties > 0 {
		m.AverageYield /= Percent(m.TotalProperties)
		m.PredictedGrowth /= Percent(m.TotalProperties)
	}

	m.TotalValue = finite(m.TotalValue)
	m.PotentialProfit = finite(m.PotentialProfit)
	m.AverageYield = m.AverageYield.finite()
	m.PredictedGrowth = m.PredictedGrowth.finite()
	m.MonthlyRevenue = finite(m.MonthlyRevenue)
	return m
}
