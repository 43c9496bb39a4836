package handlers

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"college-feedback-backend/internal/analysis"
	"college-feedback-backend/internal/logger"
	"college-feedback-backend/internal/middleware"
	"college-feedback-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON field names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decode reads a JSON body into dst and validates it. It writes the 400
// response itself and reports whether the handler may continue.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	return decodeWith(w, r, dst, nil)
}

// decodeWith runs prepare between decoding and validation.
func decodeWith(w http.ResponseWriter, r *http.Request, dst interface{}, prepare func()) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if prepare != nil {
		prepare()
	}
	if err := validate.Struct(dst); err != nil {
		writeValidationError(w, err)
		return false
	}
	return true
}

func writeValidationError(w http.ResponseWriter, err error) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		writeError(w, http.StatusBadRequest, "invalid input")
		return
	}
	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		fields[fieldPath(fe.Namespace())] = fe.Tag()
	}
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":  "validation failed",
		"fields": fields,
	})
}

// fieldPath drops the struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// writeServiceError maps domain errors onto HTTP responses. Anything it does
// not recognise is logged and answered with a generic 500.
func writeServiceError(w http.ResponseWriter, log logger.Logger, msg string, err error) {
	var missing *analysis.MissingParameterError
	var duplicate *repository.DuplicateSubmissionError
	switch {
	case errors.As(err, &missing):
		writeError(w, http.StatusBadRequest, missing.Error())
	case errors.As(err, &duplicate):
		writeError(w, http.StatusBadRequest, duplicate.Error())
	case errors.Is(err, analysis.ErrNoFeedback):
		writeError(w, http.StatusNotFound, "No feedback found for the given criteria")
	case errors.Is(err, repository.ErrEmailExists):
		writeError(w, http.StatusBadRequest, "User already exists")
	case errors.Is(err, repository.ErrFacultyExists):
		writeError(w, http.StatusBadRequest, "Faculty name must be unique")
	default:
		log.Error(msg, err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func parseObjectID(w http.ResponseWriter, raw string) (bson.ObjectID, bool) {
	id, err := bson.ObjectIDFromHex(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ID format")
		return bson.ObjectID{}, false
	}
	return id, true
}

// currentUserID returns the id of the authenticated caller.
func currentUserID(w http.ResponseWriter, r *http.Request) (bson.ObjectID, bool) {
	userIDHex := middleware.GetUserID(r.Context())
	if userIDHex == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return bson.ObjectID{}, false
	}
	id, err := bson.ObjectIDFromHex(userIDHex)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID")
		return bson.ObjectID{}, false
	}
	return id, true
}

// canActFor reports whether the caller may read or change data owned by
// the user with the given id.
func canActFor(r *http.Request, owner bson.ObjectID, roles ...string) bool {
	if middleware.GetUserID(r.Context()) == owner.Hex() {
		return true
	}
	role := middleware.GetRole(r.Context())
	for _, allowed := range roles {
		if role == allowed {
			return true
		}
	}
	return false
}
