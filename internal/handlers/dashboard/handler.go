package dashboard

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lodgedesk/config"
	"lodgedesk/infras/otel"
	"lodgedesk/internal/domains/customer/model"
	customerDto "lodgedesk/internal/domains/customer/model/dto"
	"lodgedesk/internal/domains/customer/service"
	sessionModel "lodgedesk/internal/domains/session/model"
	sessionRepo "lodgedesk/internal/domains/session/repository"
	"lodgedesk/shared/constant"
)

type Handler struct {
	service  service.Customer
	sessions sessionRepo.Session
	cfg      *config.Config
	otel     otel.Otel
}

func New(service service.Customer, sessions sessionRepo.Session, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service:  service,
		sessions: sessions,
		cfg:      cfg,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/", handler.Home)
	router.Post("/actions", handler.Action)
	router.Post("/customers", handler.CreateCustomer)
}

// Home renders whichever view the session state machine is in. Every
// interaction ends in a redirect back here, so each render reflects the
// current store snapshot and session state.
func (handler *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Home")
	defer scope.End()

	state := handler.session(ctx, w, r)
	scope.SetAttribute(constant.OtelAttributeSessionID, state.ID)

	switch state.Page {
	case sessionModel.PageAddCustomer:
		handler.renderAddCustomer(ctx, w, state)
	case sessionModel.PageShowConversation:
		handler.renderConversation(ctx, w, state)
	default:
		handler.renderHome(ctx, w, state)
	}

	if err := handler.sessions.Save(ctx, state); err != nil {
		log.Error().Err(err).Str("session", state.ID).Msg("failed to persist session state")
	}
}

// Action dispatches the home-page form: the checkbox selection always
// replaces the session selection first, then the pressed button decides the
// transition or bulk mutation.
func (handler *Handler) Action(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Action")
	defer scope.End()

	state := handler.session(ctx, w, r)
	scope.SetAttribute(constant.OtelAttributeSessionID, state.ID)

	if err := r.ParseForm(); err != nil {
		log.Error().Err(err).Msg("failed to parse action form")
		state.Warning = "Could not read the submitted form."
		handler.finish(ctx, w, r, state)

		return
	}

	action := r.FormValue(constant.RequestParamAction)
	if action != constant.ActionBack {
		state.SetSelection(r.Form[constant.RequestParamSelected])
	}

	switch action {
	case constant.ActionSearch:
		state.SearchTerm = r.FormValue(constant.RequestParamSearch)
		state.StatusFilter = r.FormValue(constant.RequestParamStatus)

	case constant.ActionAddCustomer:
		state.OpenAddCustomer()

	case constant.ActionApprove:
		handler.bulkStatus(ctx, state, model.StatusBooked)

	case constant.ActionDecline:
		handler.bulkStatus(ctx, state, model.StatusNotBooked)

	case constant.ActionRemove:
		removed, err := handler.service.Remove(ctx, state.Selected)
		if err != nil {
			scope.TraceError(err)
			state.Warning = err.Error()
		} else if removed > 0 {
			state.Flash = fmt.Sprintf("Removed %d customer(s).", removed)
		}

		state.ClearSelection()

	case constant.ActionConversation:
		if err := state.OpenConversation(); err != nil {
			state.Warning = err.Error()
		}

	case constant.ActionBack:
		state.BackHome()

	default:
		state.Warning = fmt.Sprintf("Unknown action %q.", action)
	}

	handler.finish(ctx, w, r, state)
}

// CreateCustomer handles the add-customer form submission. A rejected
// submission keeps the session on the form with the entered values; success
// flashes and returns home.
func (handler *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	state := handler.session(ctx, w, r)
	scope.SetAttribute(constant.OtelAttributeSessionID, state.ID)

	if r.FormValue(constant.RequestParamAction) == constant.ActionBack {
		state.BackHome()
		handler.finish(ctx, w, r, state)

		return
	}

	req := customerDto.CreateCustomerRequest{}
	req.FromForm(r)

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		state.Page = sessionModel.PageAddCustomer
		state.AddForm = &req
		state.Warning = err.Error()
		handler.finish(ctx, w, r, state)

		return
	}

	scope.AddEvent("Customer created: " + req.IdentityCardNumber)

	state.Flash = "Customer added successfully!"
	state.BackHome()
	handler.finish(ctx, w, r, state)
}

func (handler *Handler) bulkStatus(ctx context.Context, state *sessionModel.State, status string) {
	updated, err := handler.service.UpdateStatus(ctx, state.Selected, status)
	if err != nil {
		state.Warning = err.Error()
	} else if updated > 0 {
		state.Flash = fmt.Sprintf("Updated %d customer(s) to %s.", updated, status)
	}

	state.ClearSelection()
}

// finish persists the session and forces a full re-render via redirect.
func (handler *Handler) finish(ctx context.Context, w http.ResponseWriter, r *http.Request, state *sessionModel.State) {
	if err := handler.sessions.Save(ctx, state); err != nil {
		log.Error().Err(err).Str("session", state.ID).Msg("failed to persist session state")
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// session loads the state bound to the request cookie, starting a fresh
// session when the cookie is absent or expired.
func (handler *Handler) session(ctx context.Context, w http.ResponseWriter, r *http.Request) *sessionModel.State {
	cookieName := handler.cfg.Session.CookieName

	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		if state, err := handler.sessions.Get(ctx, cookie.Value); err == nil {
			return state
		}
	}

	state := sessionModel.NewState(uuid.NewString())

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    state.ID,
		Path:     "/",
		MaxAge:   handler.cfg.Session.TTLSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return state
}
