package rest

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/sensitivv/internal/logging"
	"github.com/dmitrijs2005/sensitivv/internal/server/auth"
	"github.com/dmitrijs2005/sensitivv/internal/server/models"
	"github.com/dmitrijs2005/sensitivv/internal/server/services"
	"github.com/gorilla/mux"
)

// AccountService is the account behaviour the handlers depend on.
type AccountService interface {
	Register(ctx context.Context, in services.Credentials) (*services.SessionResult, error)
	Login(ctx context.Context, in services.Credentials) (*services.SessionResult, error)
	Profile(ctx context.Context, id string) (*models.Profile, error)
	Authenticate(token string) (*auth.Claims, error)
}

type FoodItemService interface {
	List(ctx context.Context, filter models.FoodFilter) ([]models.FoodItem, error)
}

type handlers struct {
	accounts AccountService
	food     FoodItemService
	logger   logging.Logger
}

// NewRouter registers every route on a fresh mux.Router. Routes that need a
// session are wrapped with the bearer middleware.
func NewRouter(logger logging.Logger, accounts AccountService, food FoodItemService) *mux.Router {
	h := &handlers{accounts: accounts, food: food, logger: logger}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.HandleFunc("/", h.root).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/register", h.register).Methods(http.MethodPost)
	api.HandleFunc("/login", h.login).Methods(http.MethodPost)
	api.HandleFunc("/food-items", h.listFoodItems).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(h.requireSession)
	protected.HandleFunc("/validate-session", h.validateSession).Methods(http.MethodPost)
	protected.HandleFunc("/user-profile", h.userProfile).Methods(http.MethodGet)

	return r
}

// NewHandler wraps the router with the cross-cutting middleware, outermost
// first: request id, access log, panic recovery, CORS.
func NewHandler(logger logging.Logger, accounts AccountService, food FoodItemService) http.Handler {
	var h http.Handler = NewRouter(logger, accounts, food)
	h = cors(h)
	h = recoverPanic(logger)(h)
	h = accessLog(logger)(h)
	h = requestID(h)
	return h
}
