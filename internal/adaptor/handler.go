package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"book-my-property/internal/dto/request"
	"book-my-property/internal/usecase"
	"book-my-property/pkg/apperr"
	"book-my-property/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Property *PropertyHandler
	Catalog  *CatalogHandler
	Image    *ImageHandler
	Inquiry  *InquiryHandler
	Wishlist *WishlistHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Property: NewPropertyHandler(service.Property, log),
		Catalog:  NewCatalogHandler(service.Catalog, log),
		Image:    NewImageHandler(service.Image, log),
		Inquiry:  NewInquiryHandler(service.Inquiry, log),
		Wishlist: NewWishlistHandler(service.Wishlist, log),
	}
}

// decodeJSON reads the request body into dst and answers 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		msg := "Invalid request body"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		utils.ResponseBadRequest(w, msg, nil)
		return false
	}
	return true
}

// pathID parses a positive id from the named URL parameter and answers 400 otherwise.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, name))
	if !ok {
		utils.ResponseBadRequest(w, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}

func pageRequest(r *http.Request) request.PaginatedRequest {
	q := r.URL.Query()
	return request.NewPaginatedRequest(q.Get("page"), q.Get("per_page"))
}

// writeError maps a service error onto the response envelope.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	log = utils.LoggerFrom(r.Context(), log)
	msg := apperr.Message(err)

	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		log.Debug(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, msg)

	case apperr.KindConflict:
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, msg)

	case apperr.KindInvalidArgument:
		log.Warn(operation+" failed - invalid argument", zap.Error(err))
		var fields any
		if f := apperr.FieldsOf(err); len(f) > 0 {
			fields = f
		}
		utils.ResponseBadRequest(w, msg, fields)

	case apperr.KindUnauthorized:
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, msg)

	case apperr.KindForbidden:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, msg)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
