package timeline

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
	router.HandleFunc("/users/{userId}/timeline", h.GetTimeline).Methods("GET")
	router.HandleFunc("/timeline", h.CreateEntry).Methods("POST")
	router.HandleFunc("/timeline/{id}", h.DeleteEntry).Methods("DELETE")
}

func (h *Handler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ParseID(r, "userId")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid user ID")
		return
	}
	entries, err := h.core.TimelineForUser(userID)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID       uint   `json:"userId"`
		MediaItemID  *uint  `json:"mediaItemId"`
		Action       string `json:"action"`
		Details      string `json:"details"`
		ChangeReason string `json:"changeReason"`
		OldPosition  *int   `json:"oldPosition"`
		NewPosition  *int   `json:"newPosition"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil ||
		payload.UserID == 0 || payload.Details == "" || !models.ValidTimelineAction(payload.Action) {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid timeline data")
		return
	}

	entry := h.core.RecordEntry(core.RecordEntryInput{
		UserID:       payload.UserID,
		MediaItemID:  payload.MediaItemID,
		Action:       payload.Action,
		Details:      payload.Details,
		ChangeReason: payload.ChangeReason,
		OldPosition:  payload.OldPosition,
		NewPosition:  payload.NewPosition,
	})
	utils.WriteJSON(w, http.StatusCreated, entry)
}

// DeleteEntry is the administrative removal path; the timeline is otherwise
// append-only.
func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(r, "id")
	if err != nil {
		utils.WriteMessage(w, http.StatusBadRequest, "Invalid timeline entry ID")
		return
	}
	if err := h.core.DeleteTimelineEntry(id); err != nil {
		utils.WriteError(w, err)
		return
	}
	utils.WriteMessage(w, http.StatusOK, "Timeline entry deleted successfully")
}
