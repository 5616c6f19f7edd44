package types

// Advice is a trading recommendation emitted per candle by a Signal.
type Advice int8

const (
	// None means no opinion yet, or the signal has not matured.
	None Advice = iota
	Long
	Short
	// Liquidate means exit any open position but do not open a new one.
	Liquidate
)

func (a Advice) String() string {
	switch a {
	case Long:
		return "long"
	case Short:
		return "short"
	case Liquidate:
		return "liquidate"
	default:
		return "none"
	}
}

func (a Advice) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Advice) UnmarshalText(text []byte) error {
	switch string(text) {
	case "long":
		*a = Long
	case "short":
		*a = Short
	case "liquidate":
		*a = Liquidate
	default:
		*a = None
	}
	return nil
}
