package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nikolayk812/pharmacy/internal/api/dto"
	"github.com/nikolayk812/pharmacy/internal/domain"
	"github.com/nikolayk812/pharmacy/internal/port"
	"golang.org/x/text/currency"
)

// defaultCurrency is applied when a create request does not name one.
var defaultCurrency = currency.MustParseISO("KES")

type ProductHandler struct {
	products port.ProductRepository
}

func NewProduct(products port.ProductRepository) *ProductHandler {
	if products == nil {
		panic("products repository cannot be nil")
	}

	return &ProductHandler{products: products}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductsToDTO(products))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.products.GetProduct(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ProductToDTO(product))
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		writeMessage(w, http.StatusBadRequest, "name is required")
		return
	}

	productCurrency := defaultCurrency
	if req.Currency != "" {
		parsed, err := currency.ParseISO(req.Currency)
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid currency")
			return
		}
		productCurrency = parsed
	}

	if req.Price.IsNegative() {
		writeMessage(w, http.StatusBadRequest, "price cannot be negative")
		return
	}

	if req.Stock < 0 {
		writeMessage(w, http.StatusBadRequest, "stock cannot be negative")
		return
	}

	product, err := h.products.CreateProduct(r.Context(), domain.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       domain.Money{Amount: req.Price, Currency: productCurrency},
		Stock:       req.Stock,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ProductToDTO(product))
}
