package config

// Frobfile represents the structure of the frob.yaml configuration file.
// Pointer fields distinguish an omitted key from an explicit zero.
type Frobfile struct {
	Threads  *int       `yaml:"threads"`
	Verbose  bool       `yaml:"verbose"`
	Parallel *bool      `yaml:"parallel"`
	JSON     bool       `yaml:"json"`
	Limits   *LimitsDTO `yaml:"limits"`
	Samples  []SetDTO   `yaml:"samples"`
}

// LimitsDTO overrides solver ceilings. Zero keeps the default.
type LimitsDTO struct {
	RoundRobinCeiling uint64 `yaml:"roundRobinCeiling"`
	SieveCeiling      uint64 `yaml:"sieveCeiling"`
	SieveMaxCoin      uint64 `yaml:"sieveMaxCoin"`
	ParallelThreshold uint64 `yaml:"parallelThreshold"`
}

// Batchfile represents a file of coin sets solved by `frob solve --file` and `frob watch`.
type Batchfile struct {
	Sets []SetDTO `yaml:"sets"`
}

// SetDTO is a named coin set. Coins decode as strings so literals of any size survive.
type SetDTO struct {
	Name  string   `yaml:"name"`
	Coins []string `yaml:"coins"`
}
