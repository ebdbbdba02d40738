package models

// Holding is a player's open position in one team. A player holds at most
// one Holding per team; repeat buys merge into it at a volume-weighted
// average price.
type Holding struct {
	Team     string  `json:"team"`
	Shares   float64 `json:"shares"`
	BuyPrice float64 `json:"buyPrice"` // volume-weighted average entry price
	BuyRound int     `json:"buyRound"` // 0 = pre-season entry
}

// Merge folds additional shares bought at price into the holding, keeping
// BuyPrice as the volume-weighted average.
func (h *Holding) Merge(shares, price float64) {
	total := h.Shares + shares
	if total <= 0 {
		return
	}
	h.BuyPrice = (h.Shares*h.BuyPrice + shares*price) / total
	h.Shares = total
}
