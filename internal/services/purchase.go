package services

// Purchase describes one destination fuel buy: the total cost, the
// gallons actually ordered, and any fee paid.
type Purchase struct {
	CostUSD    float64
	OrderedGal float64
	FeeUSD     float64
}

// DestinationPurchase prices a required fuel buy under a vendor
// fee-waiver program (a fixed fee waived when the uplift meets a
// gallon threshold).
//
// With no program configured, or when the requirement already clears
// the threshold, the buy is exactly the required quantity. Otherwise
// the cheaper of two alternatives wins: pay the fee on the required
// quantity, or top up to the threshold to avoid it. Nothing between
// the two is ever selected; cost is monotonically increasing in
// quantity past the required minimum, so intermediate buys cannot be
// cheaper.
func DestinationPurchase(requiredGal, pricePerGal, waiverGal, waiverFee float64) Purchase {
	if requiredGal <= 0 {
		// No uplift, no fee.
		return Purchase{}
	}

	if waiverGal <= 0 || waiverFee <= 0 || requiredGal >= waiverGal {
		return Purchase{
			CostUSD:    requiredGal * pricePerGal,
			OrderedGal: requiredGal,
		}
	}

	payFee := requiredGal*pricePerGal + waiverFee
	topUp := waiverGal * pricePerGal

	if topUp < payFee {
		return Purchase{CostUSD: topUp, OrderedGal: waiverGal}
	}
	return Purchase{CostUSD: payFee, OrderedGal: requiredGal, FeeUSD: waiverFee}
}

// DestinationCost returns just the cost of DestinationPurchase.
func DestinationCost(requiredGal, pricePerGal, waiverGal, waiverFee float64) float64 {
	return DestinationPurchase(requiredGal, pricePerGal, waiverGal, waiverFee).CostUSD
}
