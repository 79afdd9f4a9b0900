// Package http provides HTTP handlers for the users module.
// Handlers translate HTTP requests into commands/queries and format responses.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/BasavarajuVB/User-management-backend/modules/users/application/commands"
	"github.com/BasavarajuVB/User-management-backend/modules/users/application/queries"
	"github.com/BasavarajuVB/User-management-backend/modules/users/domain"
)

// Response bodies clients rely on.
const (
	msgUserCreated   = "User created successfully"
	msgUserNotFound  = "User not found"
	msgEmailExists   = "User with this email already exists"
	msgDatabaseError = "Database error"
	msgInvalidBody   = "invalid request body"
)

// Handler handles HTTP requests for the users module.
type Handler struct {
	createUser *commands.CreateUserHandler
	updateUser *commands.UpdateUserHandler
	deleteUser *commands.DeleteUserHandler
	getUser    *queries.GetUserHandler
	listUsers  *queries.ListUsersHandler
	logger     *slog.Logger
}

// RegisterRoutes registers the users module routes to the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	createUser *commands.CreateUserHandler,
	updateUser *commands.UpdateUserHandler,
	deleteUser *commands.DeleteUserHandler,
	getUser *queries.GetUserHandler,
	listUsers *queries.ListUsersHandler,
	logger *slog.Logger,
) {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{
		createUser: createUser,
		updateUser: updateUser,
		deleteUser: deleteUser,
		getUser:    getUser,
		listUsers:  listUsers,
		logger:     logger,
	}

	mux.HandleFunc("GET /users", h.handleListUsers)
	mux.HandleFunc("POST /users", h.handleCreateUser)
	mux.HandleFunc("GET /users/{id}", h.handleGetUser)
	mux.HandleFunc("PUT /users/{id}", h.handleUpdateUser)
	mux.HandleFunc("DELETE /users/{id}", h.handleDeleteUser)
}

// Request/Response DTOs

// userRequest fields are pointers so omitted fields reach the store as null.
type userRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	Department *string `json:"department"`
}

type createUserResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handlers

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.listUsers.Handle(r.Context(), queries.ListUsersQuery{})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	req, err := decodeUserRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
		return
	}

	cmd := commands.CreateUserCommand{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
	}

	id, err := h.createUser.Handle(r.Context(), cmd)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, createUserResponse{ID: id.Int64(), Message: msgUserCreated})
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.getUser.Handle(r.Context(), queries.GetUserQuery{UserID: r.PathValue("id")})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	req, err := decodeUserRequest(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody})
		return
	}

	cmd := commands.UpdateUserCommand{
		UserID:     r.PathValue("id"),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := h.updateUser.Handle(r.Context(), cmd); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DeleteUserCommand{UserID: r.PathValue("id")}
	if err := h.deleteUser.Handle(r.Context(), cmd); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helper functions

// decodeUserRequest reads the optional JSON body. A body that is absent, not
// declared as JSON, or a JSON array yields a request with every field null,
// which the store then rejects. Malformed JSON, trailing data after the
// value and non-object values are errors.
func decodeUserRequest(r *http.Request) (userRequest, error) {
	var req userRequest
	if !isJSONContent(r.Header.Get("Content-Type")) {
		return req, nil
	}

	dec := json.NewDecoder(r.Body)
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return req, nil
		}
		return req, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return req, errTrailingData
	}

	if len(raw) == 0 {
		return req, errNotAnObject
	}
	switch raw[0] {
	case '[':
		return req, nil
	case '{':
		return req, json.Unmarshal(raw, &req)
	default:
		return req, errNotAnObject
	}
}

var (
	errTrailingData = errors.New("unexpected data after JSON value")
	errNotAnObject  = errors.New("request body must be a JSON object")
)

func isJSONContent(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// handleError maps domain errors to responses. Anything unrecognised is a
// storage failure; its detail is logged, never sent to the client.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrInvalidUserID):
		writeJSON(w, http.StatusNotFound, messageResponse{Message: msgUserNotFound})
	case errors.Is(err, domain.ErrEmailExists):
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: msgEmailExists})
	default:
		h.logger.ErrorContext(r.Context(), "storage operation failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgDatabaseError})
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
