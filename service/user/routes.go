package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/toplistapp/toplist-server/cmd/models"
	"github.com/toplistapp/toplist-server/cmd/utils"
	"github.com/toplistapp/toplist-server/core"
)

type Handler struct {
	core *core.Core
}

func NewHandler(c *core.Core) *Handler {
	return &Handler{core: c}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/users", h.GetUsers).Methods("GET")
	router.HandleFunc("/users", h.CreateUser).Methods("POST")
	router.HandleFunc("/users/{id}", h.GetUser).Methods("GET")
	router.HandleFunc("/users/{userId}/discover", h.Discover).Methods("GET")
	router.HandleFunc("/users/{userId}/connections", h.GetConnections).Methods("GET")
	router.HandleFunc("/connections", h.CreateConnection).Methods("POST")
}

func (h *Handler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.core.ListUsers()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	user, err := h.core.GetUser(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username    string `json:"username"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
		Bio         string `json:"bio"`
		Location    string `json:"location"`
		AvatarColor string `json:"avatarColor"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user data")
		return
	}
	if payload.Username == "" || payload.Email == "" || payload.DisplayName == "" {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user data")
		return
	}

	user, err := h.core.RegisterUser(&models.User{
		Username:    payload.Username,
		Email:       payload.Email,
		DisplayName: payload.DisplayName,
		Bio:         payload.Bio,
		Location:    payload.Location,
		AvatarColor: payload.AvatarColor,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, user)
}

// Discover returns users sharing media with the subject, strongest overlap
// first. An explicit minMatches=0 is honored; only an absent or malformed
// parameter falls back to the default threshold.
func (h *Handler) Discover(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r, "userId")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	minMatches := core.DefaultMinMatches
	if raw := r.URL.Query().Get("minMatches"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			minMatches = n
		}
	}

	matches, err := h.core.DiscoverMatches(userID, minMatches)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, matches)
}

func (h *Handler) GetConnections(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r, "userId")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	conns, err := h.core.ConnectionsForUser(userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, conns)
}

func (h *Handler) CreateConnection(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID          uint `json:"userId"`
		ConnectedUserID uint `json:"connectedUserId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == 0 || payload.ConnectedUserID == 0 {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid connection data")
		return
	}
	conn, err := h.core.CreateConnection(payload.UserID, payload.ConnectedUserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, conn)
}
