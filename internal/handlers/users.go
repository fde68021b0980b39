package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/alfagnish/userlist/internal/users"
	"github.com/go-chi/chi/v5"
)

// UsersHandler serves the user registry.
type UsersHandler struct {
	reg    *users.Registry
	logger *slog.Logger
}

// NewUsersHandler creates a new UsersHandler backed by reg.
func NewUsersHandler(reg *users.Registry, logger *slog.Logger) *UsersHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UsersHandler{reg: reg, logger: logger}
}

// Routes registers user routes on the given chi router.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Get("/", h.ListUsers)
	r.Post("/", h.CreateUser)
}

// ListUsers returns all users in creation order.
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.reg.List())
}

// maxCreateBodySize caps POST /users bodies.
const maxCreateBodySize = 100 << 10

// msgNameRequired is the client-facing message for users.ErrNameRequired.
const msgNameRequired = "Name is required"

var (
	errBodyTooLarge = errors.New("request body too large")
	errInvalidBody  = errors.New("invalid JSON body")
)

// createUserRequest keeps name untyped so that a missing or non-string
// value is reported as a validation failure instead of a decode failure.
type createUserRequest struct {
	Name any `json:"name"`
}

// decodeBody reads exactly one JSON value from a size-limited body. An empty
// body leaves v untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxCreateBodySize)
	dec := json.NewDecoder(r.Body)

	err := dec.Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err == nil {
		// Anything but whitespace after the first value is malformed.
		err = dec.Decode(&json.RawMessage{})
		if errors.Is(err, io.EOF) {
			return nil
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	return errInvalidBody
}

// CreateUser registers a new user from a JSON body of the form {"name": "..."}.
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeBody(w, r, &req); err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errBodyTooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		writeError(w, status, err.Error())
		return
	}

	name, _ := req.Name.(string)
	u, err := h.reg.Create(name)
	if err != nil {
		if errors.Is(err, users.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, msgNameRequired)
			return
		}
		h.logger.Error("create user", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	h.logger.Debug("user created", "id", u.ID, "name", u.Name)
	writeJSON(w, http.StatusCreated, u)
}
