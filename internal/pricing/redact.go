package pricing

// Permissions are the calculator-relevant grants of the calling user,
// resolved by the auth layer before a calculation is requested.
type Permissions struct {
	CanAccessAllCategories bool `json:"can_access_all_categories"`
	CanViewMargins         bool `json:"can_view_margins"`
	CanViewWholesaleRates  bool `json:"can_view_wholesale_rates"`
}

// Redact strips the fields the caller may not see. Margin visibility gates
// the whole margin chain; wholesale-rate visibility additionally gates the
// wholesaler-side figures and the configured buying percentage.
func (r *NewResult) Redact(p Permissions) {
	if !p.CanViewMargins {
		r.Margin = nil
	} else if !p.CanViewWholesaleRates && r.Margin != nil {
		r.Margin.Wholesale = nil
	}
	if !p.CanViewWholesaleRates {
		r.Percentages.Buying = 0
	}
}

// Redact strips margin and wholesale figures from an old-jewelry result.
func (r *OldResult) Redact(p Permissions) {
	if !p.CanViewMargins {
		r.Margin = nil
	}
	if r.Resale == nil {
		return
	}
	redactResaleCost(&r.Resale.Direct.Cost, p)
	if r.Resale.PolishRepair != nil {
		redactResaleCost(&r.Resale.PolishRepair.Cost, p)
	}
}

func redactResaleCost(cost **ResaleCost, p Permissions) {
	if *cost == nil {
		return
	}
	if !p.CanViewMargins {
		*cost = nil
		return
	}
	if !p.CanViewWholesaleRates {
		(*cost).Wholesale = nil
	}
}
