package dto_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lodgedesk/internal/domains/customer/model"
	"lodgedesk/internal/domains/customer/model/dto"
	"lodgedesk/shared/failure"
	"lodgedesk/shared/validator"
)

func validRequest() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		IdentityCardNumber: "A1",
		FullName:           "Alice",
		Age:                30,
		IdentityCard:       "Passport",
		PhoneNumber:        "555-0101",
		RoomType:           "Deluxe",
		NumberOfRooms:      2,
		CheckInDate:        "2026-09-01",
		CheckOutDate:       "2026-09-05",
		FoodService:        "Yes",
		TotalBillAmount:    "199.99",
		PaymentOption:      "UPI",
	}
}

func TestCreateCustomerRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateCustomerRequest)
		wantErr bool
	}{
		{name: "valid request", mutate: func(*dto.CreateCustomerRequest) {}},
		{name: "age below eighteen", mutate: func(r *dto.CreateCustomerRequest) { r.Age = 17 }, wantErr: true},
		{name: "age above hundred", mutate: func(r *dto.CreateCustomerRequest) { r.Age = 101 }, wantErr: true},
		{name: "zero rooms", mutate: func(r *dto.CreateCustomerRequest) { r.NumberOfRooms = 0 }, wantErr: true},
		{name: "too many rooms", mutate: func(r *dto.CreateCustomerRequest) { r.NumberOfRooms = 11 }, wantErr: true},
		{name: "missing id", mutate: func(r *dto.CreateCustomerRequest) { r.IdentityCardNumber = "" }, wantErr: true},
		{name: "missing name", mutate: func(r *dto.CreateCustomerRequest) { r.FullName = "" }, wantErr: true},
		{name: "missing phone", mutate: func(r *dto.CreateCustomerRequest) { r.PhoneNumber = "" }, wantErr: true},
		{name: "unknown room type", mutate: func(r *dto.CreateCustomerRequest) { r.RoomType = "Penthouse" }, wantErr: true},
		{name: "malformed check-in date", mutate: func(r *dto.CreateCustomerRequest) { r.CheckInDate = "01/09/2026" }, wantErr: true},
		{name: "other identity card without free text", mutate: func(r *dto.CreateCustomerRequest) { r.IdentityCard = "Other" }, wantErr: true},
		{
			name: "other identity card with free text",
			mutate: func(r *dto.CreateCustomerRequest) {
				r.IdentityCard = "Other"
				r.OtherIdentityCard = "Driving License"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, 400, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCreateCustomerRequest_ToModel(t *testing.T) {
	req := validRequest()
	req.IdentityCard = "Other"
	req.OtherIdentityCard = "Driving License"
	req.PaymentOption = "Other"
	req.OtherPaymentOption = "Cash"

	customer, err := req.ToModel()
	assert.NoError(t, err)

	assert.Equal(t, "Driving License", customer.IdentityCard)
	assert.Equal(t, "Cash", customer.PaymentOption)
	assert.Equal(t, "Deluxe", customer.RoomType)
	assert.Equal(t, model.StatusPending, customer.BookingStatus)
	assert.Equal(t, "199.99", customer.TotalBillAmount.String())
}

func TestCreateCustomerRequest_ToModel_BadAmount(t *testing.T) {
	req := validRequest()
	req.TotalBillAmount = "lots"

	_, err := req.ToModel()
	assert.Error(t, err)

	req.TotalBillAmount = "-5.00"

	_, err = req.ToModel()
	assert.Error(t, err)
}

func TestCreateCustomerRequest_FromForm(t *testing.T) {
	form := url.Values{
		"identity_card_number": {"A1"},
		"full_name":            {"Alice"},
		"age":                  {"30"},
		"identity_card":        {"Passport"},
		"phone_number":         {"555-0101"},
		"room_type":            {"Deluxe"},
		"number_of_rooms":      {"2"},
		"check_in_date":        {"2026-09-01"},
		"check_out_date":       {"2026-09-05"},
		"food_service":         {"Yes"},
		"total_bill_amount":    {"199.99"},
		"payment_option":       {"UPI"},
	}

	r := httptest.NewRequest("POST", "/customers", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	req := dto.CreateCustomerRequest{}
	req.FromForm(r)

	assert.Equal(t, validRequest(), req)
}

func TestCreateCustomerRequest_FromForm_BadNumbers(t *testing.T) {
	form := url.Values{
		"age":             {"thirty"},
		"number_of_rooms": {""},
	}

	r := httptest.NewRequest("POST", "/customers", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	req := dto.CreateCustomerRequest{}
	req.FromForm(r)

	assert.Zero(t, req.Age)
	assert.Zero(t, req.NumberOfRooms)
	assert.Error(t, validator.ValidateStruct(&req))
}
