package models

// TradeType identifies the direction of a logged trade.
type TradeType string

const (
	// TradeBuy is a share purchase.
	TradeBuy TradeType = "buy"
	// TradeSell is a share sale.
	TradeSell TradeType = "sell"
)

// Valid returns true if the TradeType is one of the defined constants.
func (t TradeType) Valid() bool {
	switch t {
	case TradeBuy, TradeSell:
		return true
	default:
		return false
	}
}

// TradeRecord is an immutable log entry for one executed trade. It carries
// enough pre-trade state (prior average price, prior open round, whether the
// buy opened a new holding) to reverse the trade exactly.
type TradeRecord struct {
	ID    string    `json:"id"`
	Type  TradeType `json:"type"`
	Team  string    `json:"team"`
	Value float64   `json:"value"` // shares × execution price
	Fee   float64   `json:"fee"`
	Round int       `json:"round"`

	Shares float64 `json:"shares"`
	Price  float64 `json:"price"`

	// Buy reversal state.
	WasNewHolding bool `json:"wasNewHolding,omitempty"`

	// Sell reversal state.
	PrevBuyPrice float64 `json:"prevBuyPrice,omitempty"`
	PrevBuyRound int     `json:"prevBuyRound,omitempty"`
}
