package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"taskdeck/internal/auth"
	"taskdeck/internal/http/respond"
	"taskdeck/internal/task"

	"github.com/go-chi/chi/v5"
)

type TaskHandler struct {
	Store task.Store
}

type taskReq struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Status      string  `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`
}

// bind validates the payload and maps it onto a Task with defaults applied.
// Field errors are collected across the whole payload, due_date included.
func bind(req taskReq) (task.Task, []respond.FieldError) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		req.Description = &d
	}

	errs := checkStruct(req)

	var due *time.Time
	if req.DueDate != nil && strings.TrimSpace(*req.DueDate) != "" {
		t, err := parseDate(strings.TrimSpace(*req.DueDate))
		if err != nil {
			errs = append(errs, respond.FieldError{
				Field:   "due_date",
				Message: "Due date must be a valid date",
			})
		} else {
			due = t
		}
	}
	if errs != nil {
		return task.Task{}, errs
	}

	t := task.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      task.StatusPending,
		Priority:    task.PriorityMedium,
		DueDate:     due,
	}
	if req.Status != "" {
		t.Status = task.Status(req.Status)
	}
	if req.Priority != "" {
		t.Priority = task.Priority(req.Priority)
	}
	return t, nil
}

func parseDate(s string) (*time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFromContext(r.Context())
	q := r.URL.Query()

	f := task.Filter{
		Status:   strings.TrimSpace(q.Get("status")),
		Priority: strings.TrimSpace(q.Get("priority")),
	}

	// absent params default to newest-first; values outside the
	// allow-list fall through to store order inside the store
	srt := task.Sort{
		Field: strings.TrimSpace(q.Get("sortBy")),
		Order: strings.TrimSpace(q.Get("order")),
	}
	if srt.Field == "" {
		srt.Field = "created_at"
	}
	if srt.Order == "" {
		srt.Order = "DESC"
	}

	tasks, err := h.Store.List(r.Context(), ident.ID, f, srt)
	if err != nil {
		log.Printf("fetch tasks error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"tasks":   tasks,
	})
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFromContext(r.Context())

	var req taskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	t, errs := bind(req)
	if errs != nil {
		respond.ValidationErrors(w, errs)
		return
	}
	t.UserID = ident.ID

	if err := h.Store.Create(r.Context(), &t); err != nil {
		log.Printf("create task error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Task created successfully",
		"task":    t,
	})
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFromContext(r.Context())

	id, ok := taskID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, "Task not found")
		return
	}

	t, err := h.Store.Get(r.Context(), ident.ID, id)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		log.Printf("fetch task error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"task":    t,
	})
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFromContext(r.Context())

	id, ok := taskID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, "Task not found")
		return
	}

	var req taskReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	in, errs := bind(req)
	if errs != nil {
		respond.ValidationErrors(w, errs)
		return
	}

	t, err := h.Store.Update(r.Context(), ident.ID, id, in)
	if err != nil {
		if errors.Is(err, task.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		log.Printf("update task error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Task updated successfully",
		"task":    t,
	})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, _ := auth.IdentityFromContext(r.Context())

	id, ok := taskID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, "Task not found")
		return
	}

	if err := h.Store.Delete(r.Context(), ident.ID, id); err != nil {
		if errors.Is(err, task.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Task not found")
			return
		}
		log.Printf("delete task error: %v", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Task deleted successfully",
	})
}

// taskID parses the path id. A non-numeric id can't match any row, so it
// reports the same not-found the caller would get for someone else's task.
func taskID(r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
