package presets

// Credit packages sold through Stripe, grouped by provider tier. Credit
// amounts reflect per-provider token cost so a dollar buys proportionally
// more on cheaper models.
var pricingTiers = []PricingTier{
	{ID: "zhi1_5", Name: "ZHI 1 - $5", PriceUSD: 5, Credits: 4275000},
	{ID: "zhi1_10", Name: "ZHI 1 - $10", PriceUSD: 10, Credits: 8977500},
	{ID: "zhi1_25", Name: "ZHI 1 - $25", PriceUSD: 25, Credits: 23512500},
	{ID: "zhi1_50", Name: "ZHI 1 - $50", PriceUSD: 50, Credits: 51300000},
	{ID: "zhi1_100", Name: "ZHI 1 - $100", PriceUSD: 100, Credits: 115425000},

	{ID: "zhi2_5", Name: "ZHI 2 - $5", PriceUSD: 5, Credits: 106840},
	{ID: "zhi2_10", Name: "ZHI 2 - $10", PriceUSD: 10, Credits: 224360},
	{ID: "zhi2_25", Name: "ZHI 2 - $25", PriceUSD: 25, Credits: 587625},
	{ID: "zhi2_50", Name: "ZHI 2 - $50", PriceUSD: 50, Credits: 1282100},
	{ID: "zhi2_100", Name: "ZHI 2 - $100", PriceUSD: 100, Credits: 2883400},

	{ID: "zhi3_5", Name: "ZHI 3 - $5", PriceUSD: 5, Credits: 702000},
	{ID: "zhi3_10", Name: "ZHI 3 - $10", PriceUSD: 10, Credits: 1474200},
	{ID: "zhi3_25", Name: "ZHI 3 - $25", PriceUSD: 25, Credits: 3861000},
	{ID: "zhi3_50", Name: "ZHI 3 - $50", PriceUSD: 50, Credits: 8424000},
	{ID: "zhi3_100", Name: "ZHI 3 - $100", PriceUSD: 100, Credits: 18954000},

	{ID: "zhi4_5", Name: "ZHI 4 - $5", PriceUSD: 5, Credits: 6410255},
	{ID: "zhi4_10", Name: "ZHI 4 - $10", PriceUSD: 10, Credits: 13461530},
	{ID: "zhi4_25", Name: "ZHI 4 - $25", PriceUSD: 25, Credits: 35256400},
	{ID: "zhi4_50", Name: "ZHI 4 - $50", PriceUSD: 50, Credits: 76923050},
	{ID: "zhi4_100", Name: "ZHI 4 - $100", PriceUSD: 100, Credits: 173176900},
}

var tierIndex = func() map[string]PricingTier {
	m := make(map[string]PricingTier, len(pricingTiers))
	for _, t := range pricingTiers {
		m[t.ID] = t
	}
	return m
}()

func Tiers() []PricingTier {
	return pricingTiers
}

func TierByID(id string) (PricingTier, bool) {
	t, ok := tierIndex[id]
	return t, ok
}
