package models

// DiscountLineType is the synthetic unit-type label on the breakdown row
// carrying the global discount, so renderers can show it without
// special-casing.
const DiscountLineType = "Discount"

// PriceLine is one per-night-per-unit row of a price breakdown.
type PriceLine struct {
	Date             string  `bson:"date,omitempty" json:"date,omitempty"`
	UnitType         string  `bson:"unitType" json:"unitType"`
	UnitNumber       string  `bson:"unitNumber,omitempty" json:"unitNumber,omitempty"`
	RoomCharge       float64 `bson:"roomCharge" json:"roomCharge"`
	Taxes            float64 `bson:"taxes" json:"taxes"`
	AdditionalCharge float64 `bson:"additionalCharge" json:"additionalCharge"`
	Total            float64 `bson:"total" json:"total"`
}

// PriceBreakdown is the frozen output of the pricing engine: ordered
// per-night-per-unit lines plus aggregate totals. It is recomputed on every
// form change and persisted unchanged at submit time.
type PriceBreakdown struct {
	Lines                 []PriceLine `bson:"lines" json:"lines"`
	RoomCharge            float64     `bson:"roomCharge" json:"roomCharge"`
	Taxes                 float64     `bson:"taxes" json:"taxes"`
	AdditionalGuestCharge float64     `bson:"additionalGuestCharge" json:"additionalGuestCharge"`
	ServicesCharge        float64     `bson:"servicesCharge" json:"servicesCharge"`
	DiscountAmount        float64     `bson:"discountAmount" json:"discountAmount"`
	Total                 float64     `bson:"total" json:"total"`
	// TotalDisplay is Total rendered with Indian digit grouping for the
	// booking form and printed receipts.
	TotalDisplay string `bson:"totalDisplay,omitempty" json:"totalDisplay,omitempty"`
}
