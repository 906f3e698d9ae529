package domain

// Pricing is the backend-computed markup breakdown for a service. Amounts are
// integer rupiah; the storefront never recomputes them.
type Pricing struct {
	// OriginalPrice is the wholesale price.
	OriginalPrice int64 `json:"original_price"`
	// MarkupPercentage is the percentage markup applied to the original price.
	MarkupPercentage float64 `json:"markup_percentage"`
	// FixedMarkup is the fixed amount added on top of the percentage markup.
	FixedMarkup int64 `json:"fixed_markup"`
	// SellingPrice is the price shown to the end user.
	SellingPrice int64 `json:"selling_price"`
	// Profit is the reseller margin (selling price minus original price).
	Profit int64 `json:"profit"`
}

// Service represents a purchasable virtual-number product. It is immutable
// once fetched; the storefront only renders it.
type Service struct {
	// ID is the service identifier.
	ID string `json:"id"`
	// Name is the display name (e.g., "WhatsApp").
	Name string `json:"name"`
	// Price is the raw upstream price string, kept for display fallback.
	Price string `json:"price,omitempty"`
	// DisplayPrice is a pre-computed price to show when no breakdown exists.
	DisplayPrice int64 `json:"display_price,omitempty"`
	// Pricing is the optional markup breakdown.
	Pricing *Pricing `json:"pricing,omitempty"`
}
