package customers

import "errors"

var (
	ErrCustomerNotFound = errors.New("customers: customer not found")
	ErrInvalidID        = errors.New("customers: invalid customer id")
)
