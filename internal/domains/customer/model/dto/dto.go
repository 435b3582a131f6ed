package dto

import (
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"lodgedesk/internal/domains/customer/model"
	"lodgedesk/shared/failure"
)

// CreateCustomerRequest carries the add-customer form. The three select
// fields each allow an Other choice whose free-text counterpart becomes the
// stored value.
type CreateCustomerRequest struct {
	IdentityCardNumber string `json:"identity_card_number" validate:"required,max=50"`
	FullName           string `json:"full_name"            validate:"required,max=100"`
	Age                int    `json:"age"                  validate:"required,gte=18,lte=100"`
	IdentityCard       string `json:"identity_card"        validate:"required,oneof='Adhar Card' Passport 'Voter Id' Other"`
	OtherIdentityCard  string `json:"other_identity_card"  validate:"required_if=IdentityCard Other,max=50"`
	PhoneNumber        string `json:"phone_number"         validate:"required,max=20"`
	RoomType           string `json:"room_type"            validate:"required,oneof=Standard Deluxe Suite Other"`
	OtherRoomType      string `json:"other_room_type"      validate:"required_if=RoomType Other,max=50"`
	NumberOfRooms      int    `json:"number_of_rooms"      validate:"required,gte=1,lte=10"`
	CheckInDate        string `json:"check_in_date"        validate:"required,datetime=2006-01-02"`
	CheckOutDate       string `json:"check_out_date"       validate:"required,datetime=2006-01-02"`
	FoodService        string `json:"food_service"         validate:"required,oneof=Yes No"`
	TotalBillAmount    string `json:"total_bill_amount"    validate:"required"`
	PaymentOption      string `json:"payment_option"       validate:"required,oneof=UPI 'Debit Card' 'Credit Card' Other"`
	OtherPaymentOption string `json:"other_payment_option" validate:"required_if=PaymentOption Other,max=50"`
}

// FromForm populates the request from submitted form values. Numeric fields
// that fail to parse are left at zero and rejected by validation.
func (c *CreateCustomerRequest) FromForm(r *http.Request) {
	c.IdentityCardNumber = r.FormValue("identity_card_number")
	c.FullName = r.FormValue("full_name")
	c.Age, _ = strconv.Atoi(r.FormValue("age"))
	c.IdentityCard = r.FormValue("identity_card")
	c.OtherIdentityCard = r.FormValue("other_identity_card")
	c.PhoneNumber = r.FormValue("phone_number")
	c.RoomType = r.FormValue("room_type")
	c.OtherRoomType = r.FormValue("other_room_type")
	c.NumberOfRooms, _ = strconv.Atoi(r.FormValue("number_of_rooms"))
	c.CheckInDate = r.FormValue("check_in_date")
	c.CheckOutDate = r.FormValue("check_out_date")
	c.FoodService = r.FormValue("food_service")
	c.TotalBillAmount = r.FormValue("total_bill_amount")
	c.PaymentOption = r.FormValue("payment_option")
	c.OtherPaymentOption = r.FormValue("other_payment_option")
}

// ToModel resolves Other selections and builds the record to insert. Booking
// status is always Pending at creation.
func (c *CreateCustomerRequest) ToModel() (model.Customer, error) {
	amount, err := decimal.NewFromString(c.TotalBillAmount)
	if err != nil {
		return model.Customer{}, failure.BadRequestFromString("TotalBillAmount must be a decimal number") //nolint:wrapcheck
	}

	if amount.IsNegative() {
		return model.Customer{}, failure.BadRequestFromString("TotalBillAmount must not be negative") //nolint:wrapcheck
	}

	return model.Customer{
		IdentityCardNumber: c.IdentityCardNumber,
		FullName:           c.FullName,
		Age:                c.Age,
		IdentityCard:       resolveOther(c.IdentityCard, c.OtherIdentityCard),
		PhoneNumber:        c.PhoneNumber,
		RoomType:           resolveOther(c.RoomType, c.OtherRoomType),
		NumberOfRooms:      c.NumberOfRooms,
		CheckInDate:        c.CheckInDate,
		CheckOutDate:       c.CheckOutDate,
		FoodService:        c.FoodService,
		TotalBillAmount:    model.NewMoney(amount),
		PaymentOption:      resolveOther(c.PaymentOption, c.OtherPaymentOption),
		BookingStatus:      model.StatusPending,
	}, nil
}

func resolveOther(selected, freeText string) string {
	if selected == model.OptionOther {
		return freeText
	}

	return selected
}
