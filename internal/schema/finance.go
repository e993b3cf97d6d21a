package schema

import "officehub/internal/models"

// InsertFinance is the validated shape accepted when creating a ledger entry.
// Amount and date are required, in contrast to the optional decimal and date
// fields elsewhere.
type InsertFinance struct {
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      Decimal `json:"amount"`
	Date        Date    `json:"date"`
}

// Validate coerces the input into a storable ledger entry, collecting
// per-field errors. Zero amounts are allowed; the rule is numeric, not
// positive.
func (in InsertFinance) Validate() (models.Finance, FieldErrors) {
	errs := FieldErrors{}

	f := models.Finance{
		Type:        requiredEnum(errs, "type", "Type", in.Type, models.ValidFinanceTypes),
		Category:    requiredString(errs, "category", "Category", in.Category),
		Description: requiredString(errs, "description", "Description", in.Description),
		Amount:      requiredDecimal(errs, "amount", "Amount", in.Amount),
		Date:        requiredDate(errs, "date", "Date", in.Date),
	}

	if len(errs) > 0 {
		return models.Finance{}, errs
	}
	return f, nil
}

// UpdateFinance is a partial patch for a ledger entry. Amount and date stay
// non-null: a patch may replace them but never clear them.
type UpdateFinance struct {
	Type        Optional[string] `json:"type"`
	Category    Optional[string] `json:"category"`
	Description Optional[string] `json:"description"`
	Amount      Decimal          `json:"amount"`
	Date        Date             `json:"date"`
}

// Apply merges the patch onto f, collecting per-field errors. f is only
// modified when validation succeeds.
func (u UpdateFinance) Apply(f *models.Finance) FieldErrors {
	errs := FieldErrors{}
	merged := *f

	if u.Type.Present() {
		merged.Type = patchEnum(errs, "type", "Type", u.Type, models.ValidFinanceTypes)
	}
	if u.Category.Present() {
		merged.Category = patchRequiredString(errs, "category", "Category", u.Category)
	}
	if u.Description.Present() {
		merged.Description = patchRequiredString(errs, "description", "Description", u.Description)
	}
	if u.Amount.Present() {
		merged.Amount = requiredDecimal(errs, "amount", "Amount", u.Amount)
	}
	if u.Date.Present() {
		merged.Date = requiredDate(errs, "date", "Date", u.Date)
	}

	if len(errs) > 0 {
		return errs
	}
	*f = merged
	return nil
}
