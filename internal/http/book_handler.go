package http

import (
	"net/http"

	"libmgmt/internal/entity"
	"libmgmt/internal/httpx"
	"libmgmt/internal/usecase"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type BookHandler struct {
	lib usecase.Library
}

func NewBookHandler(lib usecase.Library) *BookHandler {
	return &BookHandler{lib: lib}
}

// CreateBookRequest is the body of POST /books.
type CreateBookRequest struct {
	ISBN        string `json:"isbn" validate:"required,isbn"`
	Title       string `json:"title" validate:"max=500"`
	Author      string `json:"author" validate:"max=300"`
	Description string `json:"description" validate:"max=5000"`
}

// UpdateBookRequest is the body of PUT /books/{isbn}. The ISBN comes from
// the path and cannot be changed.
type UpdateBookRequest struct {
	Title       string `json:"title" validate:"max=500"`
	Author      string `json:"author" validate:"max=300"`
	Description string `json:"description" validate:"max=5000"`
}

// List handles GET /books
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	out := h.lib.ListAllBooks(r.Context())
	if !out.IsSuccess() {
		writeOutcomeError(w, r, out.Code, out.Message)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, out.Value, map[string]any{"total": len(out.Value)})
}

// Get handles GET /books/{isbn}
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	out := h.lib.GetBook(r.Context(), r.PathValue("isbn"))
	if !out.IsSuccess() {
		writeOutcomeError(w, r, out.Code, out.Message)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, out.Value, nil)
}

// Create handles POST /books
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	out := h.lib.AddBook(r.Context(), entity.NewBook(req.ISBN, req.Title, req.Author, req.Description))
	if !out.IsSuccess() {
		writeOutcomeError(w, r, out.Code, out.Message)
		return
	}
	httpx.JSONSuccessCreatedWithRequest(r, w, out.Value)
}

// Update handles PUT /books/{isbn}
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateBookRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	book := entity.NewBook(r.PathValue("isbn"), req.Title, req.Author, req.Description)
	out := h.lib.UpdateBook(r.Context(), book)
	if !out.IsSuccess() {
		writeOutcomeError(w, r, out.Code, out.Message)
		return
	}
	httpx.JSONSuccessWithRequest(r, w, out.Value, nil)
}

// Delete handles DELETE /books/{isbn}
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	out := h.lib.DeleteBook(r.Context(), r.PathValue("isbn"))
	if !out.IsSuccess() {
		writeOutcomeError(w, r, out.Code, out.Message)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return false
	}
	if verrs := ValidateStruct(dst); len(verrs) > 0 {
		details := make([]httpx.ErrorDetail, 0, len(verrs))
		for _, e := range verrs {
			details = append(details, httpx.ErrorDetail{Field: e.Field, Message: e.Message})
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Request validation failed", details)
		return false
	}
	return true
}

// writeOutcomeError maps a library error code onto an HTTP error response.
// Internal failure messages are not exposed to clients.
func writeOutcomeError(w http.ResponseWriter, r *http.Request, code usecase.ErrorCode, message string) {
	switch code {
	case usecase.CodeInvalidISBN:
		httpx.JSONErrorWithRequest(r, w, http.StatusBadRequest, code.String(), message, nil)
	case usecase.CodeISBNAlreadyExists:
		httpx.JSONErrorWithRequest(r, w, http.StatusConflict, code.String(), "ISBN already exists", nil)
	case usecase.CodeISBNNotFound:
		httpx.JSONErrorWithRequest(r, w, http.StatusNotFound, code.String(), "ISBN not found", nil)
	default:
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, code.String(), "Internal server error", nil)
	}
}
