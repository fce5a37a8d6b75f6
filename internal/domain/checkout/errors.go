package checkout

// RejectedError reports a handled failure from the checkout procedure,
// e.g. insufficient stock. It carries the procedure's own message.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string { return e.Message }
