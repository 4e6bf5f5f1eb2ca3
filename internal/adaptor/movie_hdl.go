package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxCoverSizeBytes = 10 << 20 // 10 MiB

var allowedCoverTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/webp": {},
}

type MovieHandler struct {
	service usecase.MovieService
	uploads usecase.UploadService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, uploads usecase.UploadService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		uploads: uploads,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// ListMovies handles GET /api/movies
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()

	filter, err := request.ParseMovieFilter(query)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	page, err := request.ParsePagination(query)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	result, err := h.service.List(r.Context(), ownerID, filter, page)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}

// GetMovie handles GET /api/movies/{id}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	movie, err := h.service.Get(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie retrieved successfully", movie)
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.MovieCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.Create(r.Context(), ownerID, &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// UpdateMovie handles PATCH /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.MovieUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.Update(r.Context(), ownerID, chi.URLParam(r, "id"), &req)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Delete(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Movie deleted successfully", nil)
}

// UploadCover handles POST /api/movies/cover (multipart, field "file")
func (h *MovieHandler) UploadCover(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCoverSizeBytes)
	if err := r.ParseMultipartForm(maxCoverSizeBytes); err != nil {
		utils.ResponseBadRequest(w, "Image too large or malformed; limit is 10MB", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "Missing file field", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if _, ok := allowedCoverTypes[contentType]; !ok {
		utils.ResponseBadRequest(w, "Invalid image format. Send a JPEG, PNG or WEBP file.", nil)
		return
	}

	payload, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("Failed to read upload body", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	result, err := h.uploads.UploadCover(r.Context(), ownerID, payload, contentType, header.Filename)
	if err != nil {
		utils.ResponseError(w, err)
		return
	}

	utils.ResponseCreated(w, "Cover uploaded successfully", result)
}
