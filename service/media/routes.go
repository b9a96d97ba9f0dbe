package media

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
	// Media items
	router.HandleFunc("/users/{userId}/media", h.GetUserMedia).Methods("GET")
	router.HandleFunc("/media", h.AddMediaItem).Methods("POST")
	router.HandleFunc("/media/{id}", h.UpdateMediaItem).Methods("PUT")
	router.HandleFunc("/media/{id}", h.DeleteMediaItem).Methods("DELETE")

	// Comments
	router.HandleFunc("/media/{mediaItemId}/comments", h.GetComments).Methods("GET")
	router.HandleFunc("/comments", h.AddComment).Methods("POST")
	router.HandleFunc("/comments/{id}", h.DeleteComment).Methods("DELETE")

	// Likes
	router.HandleFunc("/likes", h.AddLike).Methods("POST")
	router.HandleFunc("/likes/{userId}/{mediaItemId}", h.RemoveLike).Methods("DELETE")

	// Trending
	router.HandleFunc("/trending", h.GetTrending).Methods("GET")
}

func (h *Handler) GetUserMedia(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r, "userId")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	items, err := h.core.MediaItemsForUser(userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) AddMediaItem(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID       uint   `json:"userId"`
		Title        string `json:"title"`
		Creator      string `json:"creator"`
		MediaType    string `json:"mediaType"`
		Story        string `json:"story"`
		Position     int    `json:"position"`
		ChangeReason string `json:"changeReason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item data")
		return
	}
	if payload.UserID == 0 || payload.Title == "" || payload.Story == "" ||
		!models.ValidMediaType(payload.MediaType) ||
		payload.Position < 1 || payload.Position > models.MaxListItems {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item data")
		return
	}

	item, err := h.core.AddMediaItem(core.AddMediaItemInput{
		UserID:       payload.UserID,
		Title:        payload.Title,
		Creator:      payload.Creator,
		MediaType:    payload.MediaType,
		Story:        payload.Story,
		Position:     payload.Position,
		ChangeReason: payload.ChangeReason,
	})
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) UpdateMediaItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item ID")
		return
	}

	var payload struct {
		models.MediaItemUpdate
		ChangeReason string `json:"changeReason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item data")
		return
	}
	if payload.MediaType != nil && !models.ValidMediaType(*payload.MediaType) {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item data")
		return
	}
	if payload.Position != nil && (*payload.Position < 1 || *payload.Position > models.MaxListItems) {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item data")
		return
	}

	item, err := h.core.UpdateMediaItem(id, payload.MediaItemUpdate, payload.ChangeReason)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) DeleteMediaItem(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item ID")
		return
	}
	if err := h.core.DeleteMediaItem(id, r.URL.Query().Get("changeReason")); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Media item deleted successfully")
}

func (h *Handler) GetComments(w http.ResponseWriter, r *http.Request) {
	mediaItemID, err := utils.ParseID(r, "mediaItemId")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item ID")
		return
	}
	comments, err := h.core.CommentsForMediaItem(mediaItemID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, comments)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID      uint   `json:"userId"`
		MediaItemID uint   `json:"mediaItemId"`
		Content     string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil ||
		payload.UserID == 0 || payload.MediaItemID == 0 || payload.Content == "" {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid comment data")
		return
	}

	comment, err := h.core.AddComment(payload.UserID, payload.MediaItemID, payload.Content)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, comment)
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid comment ID")
		return
	}
	if err := h.core.RemoveComment(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Comment deleted successfully")
}

func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID      uint `json:"userId"`
		MediaItemID uint `json:"mediaItemId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil ||
		payload.UserID == 0 || payload.MediaItemID == 0 {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid like data")
		return
	}

	like, err := h.core.AddLike(payload.UserID, payload.MediaItemID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, like)
}

func (h *Handler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r, "userId")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	mediaItemID, err := utils.ParseID(r, "mediaItemId")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid media item ID")
		return
	}
	if err := h.core.RemoveLike(userID, mediaItemID); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Like removed successfully")
}

func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	limit := core.DefaultTrendingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	trending, err := h.core.Trending(limit)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, trending)
}
