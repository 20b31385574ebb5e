package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/helpers"
	"github.com/jainam01/four-kids-updated-sub000/app/models"
	"github.com/jainam01/four-kids-updated-sub000/app/repositories"
	"github.com/unrolled/render"
)

type WholesaleHandler struct {
	inquiryRepo repositories.InquiryRepositoryImpl
	render      *render.Render
	validator   *validator.Validate
}

func NewWholesaleHandler(inquiryRepo repositories.InquiryRepositoryImpl, r *render.Render, v *validator.Validate) *WholesaleHandler {
	return &WholesaleHandler{inquiryRepo: inquiryRepo, render: r, validator: v}
}

type wholesaleInquiryForm struct {
	BusinessName string `json:"businessName" validate:"required,min=2,max=120"`
	ContactName  string `json:"contactName" validate:"required,min=2,max=120"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"max=32"`
	Message      string `json:"message" validate:"required,min=10,max=2000"`
}

// Create validates and stores a wholesale inquiry. Email dispatch is
// handled outside this service.
func (h *WholesaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form wholesaleInquiryForm
	if err := helpers.DecodeJSONBody(w, r, &form); err != nil {
		respondError(h.render, w, apperrors.NewFieldError("body", "request body must be valid JSON."), "WholesaleHandler.Create")
		return
	}

	if err := h.validator.Struct(&form); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		respondError(h.render, w, apperrors.NewValidationError(helpers.FormatValidationErrors(validationErrors)), "WholesaleHandler.Create")
		return
	}

	inquiry := models.WholesaleInquiry{
		BusinessName: form.BusinessName,
		ContactName:  form.ContactName,
		Email:        form.Email,
		Phone:        form.Phone,
		Message:      form.Message,
	}
	if err := h.inquiryRepo.Create(r.Context(), &inquiry); err != nil {
		respondError(h.render, w, err, "WholesaleHandler.Create")
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, inquiry)
}

func (h *WholesaleHandler) List(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.inquiryRepo.GetAll(r.Context())
	if err != nil {
		respondError(h.render, w, err, "WholesaleHandler.List")
		return
	}
	_ = h.render.JSON(w, http.StatusOK, inquiries)
}
