package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	EntityName = "customer"

	FieldIdentityCardNumber = "identity_card_number"
	FieldBookingStatus      = "booking_status"
	FieldConversation       = "conversation"
)

const (
	StatusPending   = "Pending"
	StatusBooked    = "Booked"
	StatusNotBooked = "Not Booked"
)

const (
	TurnTypeCustomer = "customer"
	TurnTypeAgent    = "agent"
)

// OptionOther marks the free-text escape hatch on the fixed select lists.
const OptionOther = "Other"

var (
	IdentityCardOptions = []string{"Adhar Card", "Passport", "Voter Id", OptionOther}
	RoomTypeOptions     = []string{"Standard", "Deluxe", "Suite", OptionOther}
	PaymentOptions      = []string{"UPI", "Debit Card", "Credit Card", OptionOther}
	FoodServiceOptions  = []string{"Yes", "No"}
	StatusOptions       = []string{StatusPending, StatusBooked, StatusNotBooked}
)

// Customer is one booking record, keyed by identity card number.
type Customer struct {
	IdentityCardNumber string             `dynamodbav:"identity_card_number" json:"identity_card_number"`
	FullName           string             `dynamodbav:"full_name"            json:"full_name"`
	Age                int                `dynamodbav:"age"                  json:"age"`
	IdentityCard       string             `dynamodbav:"identity_card"        json:"identity_card"`
	PhoneNumber        string             `dynamodbav:"phone_number"         json:"phone_number"`
	RoomType           string             `dynamodbav:"room_type"            json:"room_type"`
	NumberOfRooms      int                `dynamodbav:"number_of_rooms"      json:"number_of_rooms"`
	CheckInDate        string             `dynamodbav:"check_in_date"        json:"check_in_date"`
	CheckOutDate       string             `dynamodbav:"check_out_date"       json:"check_out_date"`
	FoodService        string             `dynamodbav:"food_service"         json:"food_service"`
	TotalBillAmount    Money              `dynamodbav:"total_bill_amount"    json:"total_bill_amount"`
	PaymentOption      string             `dynamodbav:"payment_option"       json:"payment_option"`
	BookingStatus      string             `dynamodbav:"booking_status"       json:"booking_status"`
	Conversation       []ConversationTurn `dynamodbav:"conversation,omitempty" json:"conversation,omitempty"`
}

// ConversationTurn is one message in a customer conversation transcript.
// Turns are appended by the messaging service; this dashboard only reads them.
type ConversationTurn struct {
	Type    string `dynamodbav:"type"    json:"type"`
	Message string `dynamodbav:"message" json:"message"`
}

// DisplayText resolves the displayable content of a turn. Messages arriving
// from the messaging service may be JSON envelopes whose text field carries
// the actual content; anything that does not decode as such an envelope is
// shown as-is.
func (t ConversationTurn) DisplayText() string {
	trimmed := strings.TrimSpace(t.Message)
	if !strings.HasPrefix(trimmed, "{") {
		return t.Message
	}

	var envelope map[string]any
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil {
		return t.Message
	}

	if text, ok := envelope["text"].(string); ok {
		return text
	}

	return t.Message
}

// SpeakerLabel returns the display label for the turn's speaker role.
func (t ConversationTurn) SpeakerLabel() string {
	switch t.Type {
	case TurnTypeCustomer:
		return "Customer"
	case TurnTypeAgent:
		return "Agent"
	default:
		return t.Type
	}
}

// ValidStatus reports whether s is one of the three booking statuses.
func ValidStatus(s string) bool {
	for _, status := range StatusOptions {
		if strings.EqualFold(s, status) {
			return true
		}
	}

	return false
}

// Money carries a bill amount with exact decimal semantics. It marshals to a
// DynamoDB number so amounts survive the store round trip without float
// drift, matching how the booking agent writes them.
type Money struct {
	decimal.Decimal
}

func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

// MarshalDynamoDBAttributeValue implements attributevalue.Marshaler.
func (m Money) MarshalDynamoDBAttributeValue() (types.AttributeValue, error) {
	return &types.AttributeValueMemberN{Value: m.String()}, nil
}

// UnmarshalDynamoDBAttributeValue implements attributevalue.Unmarshaler.
func (m *Money) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	number, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return fmt.Errorf("total bill amount must be a number attribute, got %T", av)
	}

	parsed, err := decimal.NewFromString(number.Value)
	if err != nil {
		return fmt.Errorf("parsing bill amount %q: %w", number.Value, err)
	}

	m.Decimal = parsed

	return nil
}
