package shared

// FindOption locates a product option by its primary identifier. A zero
// OptionView is returned when the option no longer exists on the product;
// the booking still translates with empty option fields.
func FindOption(p ProductView, optionID string) OptionView {
	for _, o := range p.Options {
		if o.OptionID == optionID {
			return o
		}
	}
	return OptionView{}
}
