package format

type (
	// Strategy selects how bin edges are computed during symbolic discretization.
	Strategy uint8
	// CompressionType selects the compression codec for model file payloads.
	CompressionType uint8
)

const (
	// StrategyUniform spaces bin edges evenly between each sample's min and max.
	StrategyUniform Strategy = 0x1
	// StrategyQuantile places bin edges at each sample's empirical quantiles.
	StrategyQuantile Strategy = 0x2
	// StrategyNormal places bin edges at standard normal quantiles, independent of the sample.
	StrategyNormal Strategy = 0x3

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (s Strategy) String() string {
	switch s {
	case StrategyUniform:
		return "uniform"
	case StrategyQuantile:
		return "quantile"
	case StrategyNormal:
		return "normal"
	default:
		return "unknown"
	}
}

// StrategyFromString returns the Strategy for a given name.
// Returns Strategy(0) for unknown names.
func StrategyFromString(name string) Strategy {
	switch name {
	case "uniform":
		return StrategyUniform
	case "quantile":
		return StrategyQuantile
	case "normal":
		return StrategyNormal
	default:
		return Strategy(0)
	}
}

// Valid reports whether the strategy is one of the three supported values.
func (s Strategy) Valid() bool {
	return s == StrategyUniform || s == StrategyQuantile || s == StrategyNormal
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// CompressionFromString returns the CompressionType for a given name
// (lowercase, as accepted on the command line).
// Returns CompressionType(0) for unknown names.
func CompressionFromString(name string) CompressionType {
	switch name {
	case "none":
		return CompressionNone
	case "zstd":
		return CompressionZstd
	case "s2":
		return CompressionS2
	case "lz4":
		return CompressionLZ4
	default:
		return CompressionType(0)
	}
}
