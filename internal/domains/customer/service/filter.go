package service

import (
	"strings"

	"lodgedesk/internal/domains/customer/model"
	"lodgedesk/shared/constant"
)

// Filter narrows a record set by a case-insensitive substring over full name
// or identity card number, and an exact (case-insensitive) booking status
// match. Both conditions compose with AND; input order is preserved.
func Filter(customers []model.Customer, term, status string) []model.Customer {
	term = strings.ToLower(strings.TrimSpace(term))
	filterByStatus := status != "" && !strings.EqualFold(status, constant.StatusFilterAll)

	filtered := make([]model.Customer, 0, len(customers))

	for _, customer := range customers {
		if term != "" &&
			!strings.Contains(strings.ToLower(customer.FullName), term) &&
			!strings.Contains(strings.ToLower(customer.IdentityCardNumber), term) {
			continue
		}

		if filterByStatus && !strings.EqualFold(customer.BookingStatus, status) {
			continue
		}

		filtered = append(filtered, customer)
	}

	return filtered
}
