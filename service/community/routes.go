package community

import (
	"encoding/json"
	"net/http"

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
	router.HandleFunc("/communities", h.GetCommunities).Methods("GET")
	router.HandleFunc("/communities", h.CreateCommunity).Methods("POST")
	router.HandleFunc("/communities/{id}", h.GetCommunity).Methods("GET")
	router.HandleFunc("/communities/{id}", h.UpdateCommunity).Methods("PUT")
	router.HandleFunc("/communities/{id}", h.DeleteCommunity).Methods("DELETE")
	router.HandleFunc("/communities/{id}/members", h.GetMembers).Methods("GET")
	router.HandleFunc("/communities/{id}/join", h.Join).Methods("POST")
	router.HandleFunc("/communities/{id}/leave", h.Leave).Methods("DELETE")
	router.HandleFunc("/users/{userId}/communities", h.GetUserCommunities).Methods("GET")
}

func (h *Handler) GetCommunities(w http.ResponseWriter, r *http.Request) {
	communities, err := h.core.ListCommunities()
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, communities)
}

func (h *Handler) GetCommunity(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community ID")
		return
	}
	community, err := h.core.GetCommunity(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, community)
}

func (h *Handler) GetUserCommunities(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r, "userId")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	communities, err := h.core.CommunitiesForUser(userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, communities)
}

func (h *Handler) CreateCommunity(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		MediaType   string `json:"mediaType"`
		CreatorID   uint   `json:"creatorId"`
		Color       string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil ||
		payload.Name == "" || payload.Description == "" || payload.CreatorID == 0 {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community data")
		return
	}
	if payload.MediaType != "" && !models.ValidMediaType(payload.MediaType) {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community data")
		return
	}

	community, err := h.core.CreateCommunity(&models.Community{
		Name:        payload.Name,
		Description: payload.Description,
		MediaType:   payload.MediaType,
		CreatorID:   payload.CreatorID,
		Color:       payload.Color,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, community)
}

func (h *Handler) UpdateCommunity(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community ID")
		return
	}

	var upd models.CommunityUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community data")
		return
	}
	if upd.MediaType != nil && *upd.MediaType != "" && !models.ValidMediaType(*upd.MediaType) {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community data")
		return
	}

	community, err := h.core.UpdateCommunity(id, upd)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, community)
}

func (h *Handler) DeleteCommunity(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community ID")
		return
	}
	if err := h.core.DeleteCommunity(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Community deleted successfully")
}

func (h *Handler) GetMembers(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community ID")
		return
	}
	members, err := h.core.MembersForCommunity(id)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, members)
}

func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community ID")
		return
	}
	var payload struct {
		UserID uint `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == 0 {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid member data")
		return
	}

	member, err := h.core.JoinCommunity(id, payload.UserID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, member)
}

func (h *Handler) Leave(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid community ID")
		return
	}
	var payload struct {
		UserID uint `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.UserID == 0 {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid member data")
		return
	}

	if err := h.core.LeaveCommunity(id, payload.UserID); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Left community successfully")
}
