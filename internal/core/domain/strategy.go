package domain

// Strategy identifies the algorithm the dispatcher selected for a coin set.
type Strategy uint8

const (
	// StrategySingle handles a one-coin set without any search.
	StrategySingle Strategy = iota
	// StrategyTwoValue uses the closed form a*b - a - b.
	StrategyTwoValue
	// StrategyRoundRobin uses residue relaxation modulo the smallest coin.
	StrategyRoundRobin
	// StrategySieveWithFallback tries the bounded sieve and falls back to round-robin on failure.
	StrategySieveWithFallback
)

// String returns the label used in logs, spans and metrics.
func (s Strategy) String() string {
	switch s {
	case StrategySingle:
		return "single"
	case StrategyTwoValue:
		return "two_value"
	case StrategyRoundRobin:
		return "round_robin"
	case StrategySieveWithFallback:
		return "sieve"
	default:
		return "unknown"
	}
}
