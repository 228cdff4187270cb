package transport

import (
	"net/http"

	"github.com/gorilla/mux"

	"inventoryservice/pkg/domain/model"
	"inventoryservice/pkg/domain/service"
)

type server struct {
	products service.ProductService
	auth     service.AuthService
	sessions *sessionManager
	renderer Renderer
}

// NewRouter wires the HTTP surface. All collaborators are injected; the router
// owns no connections of its own.
func NewRouter(products service.ProductService, auth service.AuthService, sessionStore model.SessionStore, sessionSecret string, renderer Renderer) http.Handler {
	s := &server{
		products: products,
		auth:     auth,
		sessions: newSessionManager(sessionStore, sessionSecret),
		renderer: renderer,
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.home).Methods(http.MethodGet)
	r.HandleFunc("/products", s.listProducts).Methods(http.MethodGet)
	r.HandleFunc("/products", s.createProduct).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}", s.updateProduct).Methods(http.MethodPut)
	r.HandleFunc("/products/{id}", s.deleteProduct).Methods(http.MethodDelete)
	r.HandleFunc("/sortP", s.sortProducts).Methods(http.MethodPost)
	r.HandleFunc("/filterByPrice", s.filterProducts).Methods(http.MethodPost)
	r.HandleFunc("/report", s.report).Methods(http.MethodGet)
	r.HandleFunc("/register", s.registerForm).Methods(http.MethodGet)
	r.HandleFunc("/register", s.register).Methods(http.MethodPost)
	r.HandleFunc("/login", s.loginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", s.login).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.logout).Methods(http.MethodGet)

	return logMiddleware(methodOverrideMiddleware(r))
}
