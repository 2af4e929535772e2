package dialog

// Results lists the outcomes reachable for the button set, in the order the
// buttons are declared.
func (b MessageButtons) Results() []MessageResult {
	switch b {
	case ButtonsOkCancel:
		return []MessageResult{ResultOk, ResultCancel}
	case ButtonsYesNo:
		return []MessageResult{ResultYes, ResultNo}
	case ButtonsYesNoCancel:
		return []MessageResult{ResultYes, ResultNo, ResultCancel}
	default:
		return []MessageResult{ResultOk}
	}
}

// Allows reports whether r is one of the set's buttons.
func (b MessageButtons) Allows(r MessageResult) bool {
	for _, v := range b.Results() {
		if v == r {
			return true
		}
	}
	return false
}

// Affirmative is the accepting button of the set: Ok or Yes.
func (b MessageButtons) Affirmative() MessageResult {
	return b.Results()[0]
}

// Rejective is the button a dismissal without a button press counts as:
// Cancel when the set has one, No for YesNo, Ok for Ok.
func (b MessageButtons) Rejective() MessageResult {
	switch b {
	case ButtonsOkCancel, ButtonsYesNoCancel:
		return ResultCancel
	case ButtonsYesNo:
		return ResultNo
	default:
		return ResultOk
	}
}

// HasCancel reports whether the set has a Cancel button.
func (b MessageButtons) HasCancel() bool {
	return b == ButtonsOkCancel || b == ButtonsYesNoCancel
}

// Label returns the button caption used by helper programs.
func (r MessageResult) Label() string {
	switch r {
	case ResultCancel:
		return "Cancel"
	case ResultYes:
		return "Yes"
	case ResultNo:
		return "No"
	default:
		return "OK"
	}
}

// ResultForLabel maps a button caption back to its result within the set.
func (b MessageButtons) ResultForLabel(label string) (MessageResult, bool) {
	for _, r := range b.Results() {
		if r.Label() == label {
			return r, true
		}
	}
	return 0, false
}
