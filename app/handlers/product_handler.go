package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	catalogSvc *services.CatalogService
	render     *render.Render
}

func NewProductHandler(catalogSvc *services.CatalogService, r *render.Render) *ProductHandler {
	return &ProductHandler{catalogSvc: catalogSvc, render: r}
}

func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogSvc.GetCategories(r.Context())
	if err != nil {
		respondError(h.render, w, err, "ProductHandler.Categories")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, categories)
}

func (h *ProductHandler) CategoryBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, err := h.catalogSvc.GetCategoryBySlug(r.Context(), slug)
	if err != nil {
		respondError(h.render, w, err, "ProductHandler.CategoryBySlug")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, category)
}

func (h *ProductHandler) Products(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		respondError(h.render, w, err, "ProductHandler.Products")
		return
	}

	products, err := h.catalogSvc.FilterProducts(r.Context(), *filter)
	if err != nil {
		respondError(h.render, w, err, "ProductHandler.Products")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) ProductBySlug(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	product, err := h.catalogSvc.GetProductBySlug(r.Context(), slug)
	if err != nil {
		respondError(h.render, w, err, "ProductHandler.ProductBySlug")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, product)
}

// parseProductFilter validates the query params into a typed filter.
// List params are comma-separated.
func parseProductFilter(r *http.Request) (*services.ProductFilter, error) {
	q := r.URL.Query()
	fields := make(map[string]string)

	filter := &services.ProductFilter{
		CategorySlug: q.Get("category"),
		Search:       q.Get("search"),
		Sizes:        splitList(q.Get("sizes")),
		Colors:       splitList(q.Get("colors")),
		AgeGroups:    splitList(q.Get("ageGroups")),
		Sort:         q.Get("sort"),
	}

	if raw := q.Get("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			fields["minPrice"] = "minPrice must be a number."
		} else {
			filter.MinPrice = &min
		}
	}
	if raw := q.Get("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			fields["maxPrice"] = "maxPrice must be a number."
		} else {
			filter.MaxPrice = &max
		}
	}

	for param, dst := range map[string]**bool{
		"featured": &filter.Featured,
		"sale":     &filter.OnSale,
		"new":      &filter.New,
	} {
		if raw := q.Get(param); raw != "" {
			b, err := strconv.ParseBool(raw)
			if err != nil {
				fields[param] = param + " must be true or false."
			} else {
				*dst = &b
			}
		}
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			fields["page"] = "page must be a positive integer."
		} else {
			filter.Page = page
		}
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			fields["limit"] = "limit must be a positive integer."
		} else {
			filter.Limit = limit
		}
	}

	if len(fields) > 0 {
		return nil, apperrors.NewValidationError(fields)
	}
	return filter, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
