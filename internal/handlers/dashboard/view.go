package dashboard

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"lodgedesk/internal/domains/customer/model"
	customerDto "lodgedesk/internal/domains/customer/model/dto"
	sessionModel "lodgedesk/internal/domains/session/model"
	"lodgedesk/shared/constant"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// HomeView feeds the customer table page.
type HomeView struct {
	Flash         string
	Warning       string
	SearchTerm    string
	StatusFilter  string
	StatusFilters []string
	Rows          []CustomerRow
}

// CustomerRow decorates one record with its render state.
type CustomerRow struct {
	model.Customer
	Selected    bool
	StatusClass string
}

// AddCustomerView feeds the add-customer form page.
type AddCustomerView struct {
	Warning             string
	Form                *customerDto.CreateCustomerRequest
	IdentityCardOptions []string
	RoomTypeOptions     []string
	PaymentOptions      []string
	FoodServiceOptions  []string
}

// ConversationView feeds the transcript page.
type ConversationView struct {
	CustomerID string
	Warning    string
	Turns      []model.ConversationTurn
}

func (handler *Handler) renderHome(ctx context.Context, w http.ResponseWriter, state *sessionModel.State) {
	flash, warning := state.TakeFlash()

	view := HomeView{
		Flash:         flash,
		Warning:       warning,
		SearchTerm:    state.SearchTerm,
		StatusFilter:  state.StatusFilter,
		StatusFilters: append([]string{constant.StatusFilterAll}, model.StatusOptions...),
	}

	customers, err := handler.service.Search(ctx, state.SearchTerm, state.StatusFilter)
	if err != nil {
		view.Warning = "The customer list is temporarily unavailable. Please try again."
	}

	view.Rows = make([]CustomerRow, 0, len(customers))
	for _, customer := range customers {
		view.Rows = append(view.Rows, CustomerRow{
			Customer:    customer,
			Selected:    state.IsSelected(customer.IdentityCardNumber),
			StatusClass: statusClass(customer.BookingStatus),
		})
	}

	handler.render(w, "home", view)
}

func (handler *Handler) renderAddCustomer(_ context.Context, w http.ResponseWriter, state *sessionModel.State) {
	_, warning := state.TakeFlash()

	form := state.AddForm
	if form == nil {
		form = &customerDto.CreateCustomerRequest{}
	}

	state.AddForm = nil

	handler.render(w, "add_customer", AddCustomerView{
		Warning:             warning,
		Form:                form,
		IdentityCardOptions: model.IdentityCardOptions,
		RoomTypeOptions:     model.RoomTypeOptions,
		PaymentOptions:      model.PaymentOptions,
		FoodServiceOptions:  model.FoodServiceOptions,
	})
}

func (handler *Handler) renderConversation(ctx context.Context, w http.ResponseWriter, state *sessionModel.State) {
	view := ConversationView{
		CustomerID: state.ConversationID,
	}

	turns, err := handler.service.Conversation(ctx, state.ConversationID)
	if err != nil {
		view.Warning = "Error fetching conversations."
	} else {
		view.Turns = turns
	}

	handler.render(w, "conversation", view)
}

func (handler *Handler) render(w http.ResponseWriter, name string, view any) {
	buf := &strings.Builder{}

	if err := templates.ExecuteTemplate(buf, name, view); err != nil {
		log.Error().Err(err).Str("template", name).Msg("failed to render page")
		http.Error(w, "internal server error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", constant.ContentTypeHTML)
	_, _ = w.Write([]byte(buf.String()))
}

func statusClass(status string) string {
	switch status {
	case model.StatusBooked:
		return "status-booked"
	case model.StatusNotBooked:
		return "status-not-booked"
	default:
		return "status-pending"
	}
}
