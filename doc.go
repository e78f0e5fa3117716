// Package propfolio is the financial modeling engine of a real-estate
// investment tool. It is a set of pure, synchronous functions that can be
// called concurrently without coordination.
//
// The core functionalities include:
//   - Mortgage Amortization: monthly payment and totals of a fixed-rate
//     repayment mortgage (Amortize), and its month by month schedule
//     (Schedule).
//   - Long-Let Projection: yearly rent, running costs, net income, ROI and
//     yields of a buy-to-let property (ProjectLongLet).
//   - Short-Let Projection: the same economics for serviced accommodation let
//     night by night, and its uplift over the long-let baseline
//     (ProjectShortLet).
//   - Portfolio Aggregation: summary metrics of a collection of property
//     valuations (Aggregate), with a model portfolio standing in for an empty
//     one.
//
// Percentages are expressed in [0,100], not as fractions. Currency amounts
// are plain numbers in the base currency unit, Money only formats them.
//
// Out-of-domain parameters are rejected with an error wrapping
// ErrInvalidInput. Ratios with a zero denominator (ROI without deposit,
// uplift over a zero baseline) are reported as undefined NullPercent values.
package propfolio
