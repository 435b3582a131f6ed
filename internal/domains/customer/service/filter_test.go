package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodgedesk/internal/domains/customer/model"
	"lodgedesk/internal/domains/customer/service"
)

func sampleCustomers() []model.Customer {
	return []model.Customer{
		{IdentityCardNumber: "A1", FullName: "Alice", BookingStatus: model.StatusPending},
		{IdentityCardNumber: "B2", FullName: "Bob", BookingStatus: model.StatusBooked},
		{IdentityCardNumber: "C3", FullName: "Carla", BookingStatus: model.StatusNotBooked},
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		status   string
		expected []string
	}{
		{name: "no filters returns everything", term: "", status: "All", expected: []string{"A1", "B2", "C3"}},
		{name: "search by name", term: "ali", status: "All", expected: []string{"A1"}},
		{name: "search is case insensitive", term: "ALI", status: "All", expected: []string{"A1"}},
		{name: "search by id", term: "b2", status: "All", expected: []string{"B2"}},
		{name: "filter by status", term: "", status: "Booked", expected: []string{"B2"}},
		{name: "status is case insensitive", term: "", status: "not booked", expected: []string{"C3"}},
		{name: "search and status compose with AND", term: "b", status: "Booked", expected: []string{"B2"}},
		{name: "no matches", term: "zelda", status: "All", expected: []string{}},
		{name: "empty status behaves like All", term: "", status: "", expected: []string{"A1", "B2", "C3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := service.Filter(sampleCustomers(), tt.term, tt.status)

			ids := make([]string, 0, len(filtered))
			for _, c := range filtered {
				ids = append(ids, c.IdentityCardNumber)
			}

			assert.Equal(t, tt.expected, ids)
		})
	}
}

// Every filtered record is drawn from the input and matches the search term.
func TestFilter_SubsetProperty(t *testing.T) {
	records := sampleCustomers()

	for _, term := range []string{"", "a", "li", "1", "nobody"} {
		filtered := service.Filter(records, term, "All")
		assert.LessOrEqual(t, len(filtered), len(records))

		for _, c := range filtered {
			assert.Contains(t, records, c)

			if term != "" {
				matches := strings.Contains(strings.ToLower(c.FullName), term) ||
					strings.Contains(strings.ToLower(c.IdentityCardNumber), term)
				assert.True(t, matches, "record %s does not match term %q", c.IdentityCardNumber, term)
			}
		}
	}
}

func TestFilter_StatusProperty(t *testing.T) {
	for _, status := range []string{model.StatusPending, model.StatusBooked, model.StatusNotBooked} {
		for _, c := range service.Filter(sampleCustomers(), "", status) {
			assert.True(t, strings.EqualFold(c.BookingStatus, status))
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	filtered := service.Filter(sampleCustomers(), "", "All")

	assert.Equal(t, "A1", filtered[0].IdentityCardNumber)
	assert.Equal(t, "B2", filtered[1].IdentityCardNumber)
	assert.Equal(t, "C3", filtered[2].IdentityCardNumber)
}
