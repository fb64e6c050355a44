package http

import (
	"net/http"

	"github.com/MKhiriev/iros-gateway/internal/utils"
	"github.com/MKhiriev/iros-gateway/models"
)

// Every handler in this file runs behind userAuth, which stores the
// caller's authorization value in the request context.

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token, _ := utils.GetUserTokenFromContext(ctx)

	body, err := h.services.UserService.ListUsers(ctx, token, r.URL.Query().Get("company"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, body, http.StatusOK)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	token, _ := utils.GetUserTokenFromContext(ctx)

	body, err := h.services.UserService.CreateUser(ctx, token, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, body, http.StatusCreated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteUserRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	token, _ := utils.GetUserTokenFromContext(ctx)

	resp, err := h.services.UserService.DeleteUser(ctx, token, req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) forceDeleteUser(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteUserRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	token, _ := utils.GetUserTokenFromContext(ctx)

	body, err := h.services.UserService.ForceDeleteUser(ctx, token, req.Email)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, body, http.StatusOK)
}

func (h *Handler) addRole(w http.ResponseWriter, r *http.Request) {
	var req models.RoleRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	token, _ := utils.GetUserTokenFromContext(ctx)

	body, err := h.services.UserService.AddRole(ctx, token, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, body, http.StatusOK)
}

func (h *Handler) deleteRole(w http.ResponseWriter, r *http.Request) {
	var req models.RoleRequest
	if err := h.decodeAndValidate(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx := r.Context()
	token, _ := utils.GetUserTokenFromContext(ctx)

	body, err := h.services.UserService.DeleteRole(ctx, token, req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeRaw(w, body, http.StatusOK)
}
