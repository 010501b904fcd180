package controllers

import (
	"net/http"
	"time"

	"estatehub/app/auth"
	"estatehub/app/services"

	"github.com/gorilla/mux"
)

// SavedPostController handles bookmarking of posts
type SavedPostController struct {
	savedService *services.SavedPostService
	timeout      time.Duration
}

// NewSavedPostController creates a new SavedPostController
func NewSavedPostController(savedService *services.SavedPostService, timeout time.Duration) *SavedPostController {
	return &SavedPostController{
		savedService: savedService,
		timeout:      timeout,
	}
}

type saveResponse struct {
	Message string `json:"message"`
	IsSaved bool   `json:"isSaved"`
}

// Toggle saves the post for the caller, or removes it if already saved
func (sc *SavedPostController) Toggle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, sc.timeout)
	defer cancel()

	id := mux.Vars(r)["id"]
	saved, err := sc.savedService.ToggleSave(ctx, auth.UserIDFrom(r.Context()), id)
	if err != nil {
		sendError(w, r, err, "Failed to save post")
		return
	}

	if saved {
		sendJSON(w, http.StatusOK, saveResponse{Message: "Post saved", IsSaved: true})
		return
	}
	sendJSON(w, http.StatusOK, saveResponse{Message: "Post removed from saved list", IsSaved: false})
}
