package solver

import "go.trai.ch/frob/internal/core/domain"

// SelectStrategy picks the algorithm for a canonical, non-empty coin set.
// It performs no validation.
func SelectStrategy(coins domain.CoinSet, limits domain.Limits) domain.Strategy {
	switch n := coins.Len(); {
	case n == 1:
		return domain.StrategySingle
	case n == 2:
		return domain.StrategyTwoValue
	case n <= limits.RoundRobinMaxCoins:
		return domain.StrategyRoundRobin
	}

	last := coins.Last()
	if last.IsUint64() && last.Uint64() < limits.SieveMaxCoin {
		return domain.StrategySieveWithFallback
	}
	return domain.StrategyRoundRobin
}
