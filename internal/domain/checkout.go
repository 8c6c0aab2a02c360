package domain

type CheckoutState string

const (
	CheckoutEmpty           CheckoutState = "EMPTY"
	CheckoutAwaitingDetails CheckoutState = "AWAITING_DETAILS"
	CheckoutPlaced          CheckoutState = "PLACED"
)

func (s CheckoutState) IsTerminal() bool {
	return s == CheckoutPlaced
}

// String representation (for logging)
func (s CheckoutState) String() string {
	return string(s)
}
