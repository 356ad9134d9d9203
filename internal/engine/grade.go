package engine

import "github.com/shopspring/decimal"

// Star thresholds on the score percentage. Compared with decimals so the
// 0.90 and 0.60 boundaries are exact on integer score ratios.
var (
	threeStarCut = decimal.RequireFromString("0.9")
	twoStarCut   = decimal.RequireFromString("0.6")
)

// greenScorePerStar is the green-score award per star earned in an attempt.
const greenScorePerStar = 5

// Grade maps an attempt outcome onto the 0-3 star scale:
// pct >= 0.90 -> 3, pct >= 0.60 -> 2, pct > 0 -> 1, else 0.
// A maxScore of zero or less grades as zero percent rather than faulting.
func Grade(score, maxScore int) int {
	if maxScore <= 0 || score <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(score)).Div(decimal.NewFromInt(int64(maxScore)))
	switch {
	case pct.GreaterThanOrEqual(threeStarCut):
		return 3
	case pct.GreaterThanOrEqual(twoStarCut):
		return 2
	default:
		return 1
	}
}
