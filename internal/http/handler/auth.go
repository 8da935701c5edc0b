package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"taskdeck/internal/auth"
	"taskdeck/internal/http/respond"

	"gorm.io/gorm"
)

type AuthHandler struct {
	Users      auth.UserStore
	JWT        *auth.JWT
	BcryptCost int
}

type registerReq struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginReq struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if errs := checkStruct(req); errs != nil {
		respond.ValidationErrors(w, errs)
		return
	}

	// pre-check keeps the common case a clean 400; the unique index
	// covers the concurrent-insert race below
	if _, err := h.Users.FindByEmail(r.Context(), req.Email); err == nil {
		respond.Error(w, http.StatusBadRequest, "User with this email already exists")
		return
	} else if !errors.Is(err, auth.ErrUserNotFound) {
		log.Printf("registration error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	hash, err := auth.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		log.Printf("registration error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	u := auth.User{Name: req.Name, Email: req.Email, PasswordHash: hash}
	if err := h.Users.Create(r.Context(), &u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respond.Error(w, http.StatusBadRequest, "User with this email already exists")
			return
		}
		log.Printf("registration error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "User registered successfully",
		"user":    u.Public(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))

	if errs := checkStruct(req); errs != nil {
		respond.ValidationErrors(w, errs)
		return
	}

	u, err := h.Users.FindByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			// same message as a bad password: never reveal the email exists
			respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("login error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !auth.ComparePassword(u.PasswordHash, req.Password) {
		respond.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := h.JWT.Sign(u)
	if err != nil {
		log.Printf("login error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    u.Public(),
	})
}
