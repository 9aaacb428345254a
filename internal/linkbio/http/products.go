package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/veerabala/linkbio/internal/linkbio/domain"
	"github.com/veerabala/linkbio/internal/linkbio/service"
	"github.com/veerabala/linkbio/pkg/httpx"
	"github.com/veerabala/linkbio/pkg/slogx"
)

type ProductRequest struct {
	ID       int64   `json:"id"       validate:"required,gt=0"`
	Name     string  `json:"name"     validate:"required,max=256"`
	Price    float64 `json:"price"    validate:"gte=0"`
	Quantity int64   `json:"quantity" validate:"gte=0"`
}

type ProductResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price, Quantity: p.Quantity}
}

// ProductsHandler serves the legacy catalog endpoints. The catalog is
// global and unauthenticated; ids are client-assigned.
type ProductsHandler struct {
	ProductService *service.ProductService
}

func (h *ProductsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	products, err := h.ProductService.List(ctx)
	if err != nil {
		log.Error("failed to list products", "err", err)
		writeServerError(w, "Failed to list products")
		return
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ProductsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	product, err := h.ProductService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeNotFound(w, "Product not found")
			return
		}
		log.Error("failed to load product", "product_id", id, "err", err)
		writeServerError(w, "Failed to load product")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	req, ok := decodeProductRequest(w, r)
	if !ok {
		return
	}

	product, err := h.ProductService.Create(ctx, domain.Product(req))
	if err != nil {
		if errors.Is(err, service.ErrDuplicateProduct) {
			httpx.WriteJSON(w, http.StatusConflict, ErrorResponse{
				Error:            "duplicate_product",
				ErrorDescription: "Product id is already taken",
			})
			return
		}
		log.Error("failed to create product", "product_id", req.ID, "err", err)
		writeServerError(w, "Failed to create product")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toProductResponse(product))
}

func (h *ProductsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	// The path id wins over whatever the body claims.
	req.ID = id
	if err := validate.Struct(req); err != nil {
		writeBadRequest(w, "Invalid product fields: "+err.Error())
		return
	}

	product, err := h.ProductService.Update(ctx, domain.Product(req))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeNotFound(w, "Product not found")
			return
		}
		log.Error("failed to update product", "product_id", id, "err", err)
		writeServerError(w, "Failed to update product")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toProductResponse(product))
}

func (h *ProductsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.ProductService.Delete(ctx, id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			writeNotFound(w, "Product not found")
			return
		}
		log.Error("failed to delete product", "product_id", id, "err", err)
		writeServerError(w, "Failed to delete product")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeProductRequest(w http.ResponseWriter, r *http.Request) (ProductRequest, bool) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return ProductRequest{}, false
	}
	if err := validate.Struct(req); err != nil {
		writeBadRequest(w, "Invalid product fields: "+err.Error())
		return ProductRequest{}, false
	}
	return req, true
}
