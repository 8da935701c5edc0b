package handler

import (
	"errors"
	"log"
	"net/http"

	"taskdeck/internal/auth"
	"taskdeck/internal/http/respond"
)

type ProfileHandler struct {
	Users auth.UserStore
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFromContext(r.Context())

	u, err := h.Users.FindByID(r.Context(), ident.ID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			respond.Error(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("profile fetch error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user": map[string]any{
			"id":         u.ID,
			"name":       u.Name,
			"email":      u.Email,
			"created_at": u.CreatedAt,
		},
	})
}
