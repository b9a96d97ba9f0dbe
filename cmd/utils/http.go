package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/toplistapp/toplist-server/cmd/models"
)

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"message": message})
}

// WriteError translates core failure kinds into transport status codes. The
// core itself never produces HTTP responses; this is the only place the
// mapping lives.
func WriteError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		WriteMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrListFull),
		errors.Is(err, models.ErrPositionTaken),
		errors.Is(err, models.ErrDuplicate),
		errors.Is(err, models.ErrInvalid):
		WriteMessage(w, http.StatusBadRequest, err.Error())
	default:
		WriteMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// ParseID reads a positive integer path variable.
func ParseID(r *http.Request, key string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[key], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
