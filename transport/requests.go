package transport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Request bodies arrive either as JSON or as URL-encoded forms. Each handler
// decodes into its own explicit schema.

type productRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Unit        string  `json:"unit"`
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type sortRequest struct {
	SortBy string `json:"sortBy"`
}

// filterRequest keeps the bound as raw text; the handler decides how an
// unparsable value behaves.
type filterRequest struct {
	MaxPrice string
}

func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "application/json")
}

func isFormRequest(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "application/x-www-form-urlencoded")
}

func decodeProductRequest(r *http.Request) (productRequest, error) {
	var req productRequest

	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, errors.Wrap(err, "decode product body")
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, errors.Wrap(err, "parse form")
	}
	req.Name = r.PostFormValue("name")
	req.Description = r.PostFormValue("description")
	req.Unit = r.PostFormValue("unit")

	if v := r.PostFormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return req, errors.Wrapf(err, "invalid price %q", v)
		}
		req.Price = price
	}
	if v := r.PostFormValue("quantity"); v != "" {
		quantity, err := strconv.Atoi(v)
		if err != nil {
			return req, errors.Wrapf(err, "invalid quantity %q", v)
		}
		req.Quantity = quantity
	}
	return req, nil
}

func decodeCredentialsRequest(r *http.Request) (credentialsRequest, error) {
	var req credentialsRequest

	if isJSONRequest(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, errors.Wrap(err, "decode credentials body")
		}
		return req, nil
	}

	if err := r.ParseForm(); err != nil {
		return req, errors.Wrap(err, "parse form")
	}
	req.Username = r.PostFormValue("username")
	req.Password = r.PostFormValue("password")
	return req, nil
}

func decodeSortRequest(r *http.Request) sortRequest {
	if isJSONRequest(r) {
		var req sortRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		return req
	}

	_ = r.ParseForm()
	return sortRequest{SortBy: r.PostFormValue("sortBy")}
}

func decodeFilterRequest(r *http.Request) filterRequest {
	if isJSONRequest(r) {
		var body struct {
			MaxPrice any `json:"maxPrice"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.MaxPrice == nil {
			return filterRequest{}
		}
		return filterRequest{MaxPrice: fmt.Sprint(body.MaxPrice)}
	}

	_ = r.ParseForm()
	return filterRequest{MaxPrice: r.PostFormValue("maxPrice")}
}
