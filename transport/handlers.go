package transport

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"inventoryservice/pkg/domain/model"
	"inventoryservice/pkg/domain/service"
)

const anonymousUser = "anonymous"

const unauthorizedMessage = "Only authorized users can edit and delete products"

type listingPage struct {
	Products []model.Product
	Username string
}

type reportPage struct {
	Report []model.ReportRow
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *server) displayName(r *http.Request) string {
	if username, ok := s.sessions.currentUser(r); ok {
		return username
	}
	return anonymousUser
}

func (s *server) render(w http.ResponseWriter, view string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.Render(w, view, data); err != nil {
		log.WithError(err).WithField("view", view).Error("render view")
	}
}

func (s *server) renderListing(w http.ResponseWriter, r *http.Request, products []model.Product) {
	s.render(w, viewIndex, listingPage{Products: products, Username: s.displayName(r)})
}

func (s *server) home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/products", http.StatusFound)
}

func (s *server) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.products.ListProducts()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.renderListing(w, r, products)
}

func (s *server) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := decodeProductRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if _, err := s.products.CreateProduct(req.Name, req.Price, req.Description, req.Quantity, req.Unit); err != nil {
		if errors.Is(err, model.ErrProductNameTaken) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Product with this name already exists"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	http.Redirect(w, r, "/products", http.StatusFound)
}

func (s *server) updateProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.sessions.currentUser(r); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": unauthorizedMessage})
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	req, err := decodeProductRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := s.products.UpdateProduct(id, req.Name, req.Price, req.Description, req.Quantity, req.Unit); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	http.Redirect(w, r, "/products", http.StatusFound)
}

func (s *server) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.sessions.currentUser(r); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": unauthorizedMessage})
		return
	}

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.products.DeleteProduct(id); err != nil {
		if errors.Is(err, model.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	http.Redirect(w, r, "/products", http.StatusFound)
}

func (s *server) sortProducts(w http.ResponseWriter, r *http.Request) {
	req := decodeSortRequest(r)

	products, err := s.products.SortedProducts(req.SortBy)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.renderListing(w, r, products)
}

// parseMaxPrice reads an optional sign and leading digit run as an integer
// bound, so "10.5" becomes 10. Anything without a digit prefix is NaN, which
// filters everything out.
func parseMaxPrice(raw string) float64 {
	s := strings.TrimSpace(raw)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return math.NaN()
	}
	n, err := strconv.ParseFloat(s[:j], 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

func (s *server) filterProducts(w http.ResponseWriter, r *http.Request) {
	req := decodeFilterRequest(r)

	products, err := s.products.ProductsCheaperThan(parseMaxPrice(req.MaxPrice))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.renderListing(w, r, products)
}

func (s *server) report(w http.ResponseWriter, r *http.Request) {
	rows, err := s.products.ValueReport()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.render(w, viewReport, reportPage{Report: rows})
}

func (s *server) register(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentialsRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if _, err := s.auth.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Username taken"})
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *server) login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeCredentialsRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	user, err := s.auth.Authenticate(req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Invalid username or password"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if err := s.sessions.begin(r.Context(), w, user.Username); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.end(w, r); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": "Error logging out", "error": err.Error()})
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *server) loginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, viewLogin, nil)
}

func (s *server) registerForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, viewRegister, nil)
}
