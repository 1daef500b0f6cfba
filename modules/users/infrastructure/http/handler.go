// Package http provides HTTP handlers for the users module.
// Handlers translate HTTP requests into commands/queries and format responses.
package http

import (
	"net/http"

	"github.com/rai/clean-directory-go/internal/platform/httpserver"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/users/application/commands"
	"github.com/rai/clean-directory-go/modules/users/application/queries"
	"github.com/rai/clean-directory-go/modules/users/domain"
)

// Handler handles HTTP requests for the users module.
type Handler struct {
	createUser     *commands.CreateUserHandler
	updateUser     *commands.UpdateUserHandler
	softDeleteUser *commands.SoftDeleteUserHandler
	restoreUser    *commands.RestoreUserHandler
	deleteUser     *commands.DeleteUserHandler
	getUser        *queries.GetUserHandler
	listUsers      *queries.ListUsersHandler
}

func NewHandler(
	createUser *commands.CreateUserHandler,
	updateUser *commands.UpdateUserHandler,
	softDeleteUser *commands.SoftDeleteUserHandler,
	restoreUser *commands.RestoreUserHandler,
	deleteUser *commands.DeleteUserHandler,
	getUser *queries.GetUserHandler,
	listUsers *queries.ListUsersHandler,
) *Handler {
	return &Handler{
		createUser:     createUser,
		updateUser:     updateUser,
		softDeleteUser: softDeleteUser,
		restoreUser:    restoreUser,
		deleteUser:     deleteUser,
		getUser:        getUser,
		listUsers:      listUsers,
	}
}

// RegisterRoutes registers the users module routes to the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /users", h.handleListUsers)
	mux.HandleFunc("POST /users/search", h.handleSearchUsers)
	mux.HandleFunc("POST /users", h.handleCreateUser)
	mux.HandleFunc("GET /users/{id}", h.handleGetUser)
	mux.HandleFunc("PATCH /users/{id}", h.handleUpdateUser)
	mux.HandleFunc("DELETE /users/{id}", h.handleDeleteUser)
	mux.HandleFunc("POST /users/{id}/soft-delete", h.handleSoftDeleteUser)
	mux.HandleFunc("POST /users/{id}/restore", h.handleRestoreUser)
}

// Request/Response DTOs

type createUserRequest struct {
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	Email         string              `json:"email"`
	CountryTermID string              `json:"country_term_id"`
	Demographics  map[string][]string `json:"demographics"`
}

type updateUserRequest struct {
	FirstName     *string             `json:"first_name"`
	LastName      *string             `json:"last_name"`
	Email         *string             `json:"email"`
	CountryTermID *string             `json:"country_term_id"`
	Demographics  map[string][]string `json:"demographics"`
}

type searchUsersRequest struct {
	Filter queries.Filter `json:"filter"`
	Limit  *int           `json:"limit"`
	Offset int            `json:"offset"`
}

// Handlers

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	cmd, err := req.toCommand()
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	user, err := h.createUser.Handle(r.Context(), cmd)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, queries.ToUserDTO(user))
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseUserID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	user, err := h.getUser.Handle(r.Context(), queries.GetUserQuery{UserID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	if user == nil {
		httpserver.HandleError(w, r, domain.ErrUserNotFound)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseUserID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	var req updateUserRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	cmd, err := req.toCommand(id)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	user, err := h.updateUser.Handle(r.Context(), cmd)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToUserDTO(user))
}

func (h *Handler) handleSoftDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseUserID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	user, err := h.softDeleteUser.Handle(r.Context(), commands.SoftDeleteUserCommand{UserID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToUserDTO(user))
}

func (h *Handler) handleRestoreUser(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseUserID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	user, err := h.restoreUser.Handle(r.Context(), commands.RestoreUserCommand{UserID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToUserDTO(user))
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseUserID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	if err := h.deleteUser.Handle(r.Context(), commands.DeleteUserCommand{UserID: id}); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := httpserver.Page(r)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	deleted, err := httpserver.QueryBool(r, "deleted")
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	filter := queries.Filter{
		FirstName:     httpserver.QueryStringFilter(r, "first_name"),
		LastName:      httpserver.QueryStringFilter(r, "last_name"),
		Email:         httpserver.QueryStringFilter(r, "email"),
		CountryTermID: httpserver.QueryValueFilter(httpserver.QueryString(r, "country_term_id")),
		Deleted:       httpserver.QueryValueFilter(deleted),
	}

	h.respondList(w, r, queries.ListUsersQuery{Filter: filter, Offset: offset, Limit: limit})
}

func (h *Handler) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	var req searchUsersRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	if req.Offset < 0 || (req.Limit != nil && *req.Limit < 0) {
		httpserver.HandleError(w, r, types.Validation("limit and offset must be non-negative"))
		return
	}

	limit := httpserver.DefaultPageLimit
	if req.Limit != nil {
		limit = min(*req.Limit, httpserver.MaxPageLimit)
	}

	h.respondList(w, r, queries.ListUsersQuery{Filter: req.Filter, Offset: req.Offset, Limit: limit})
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, query queries.ListUsersQuery) {
	result, err := h.listUsers.Handle(r.Context(), query)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, result)
}

// Input mapping

func (req createUserRequest) toCommand() (commands.CreateUserCommand, error) {
	var cmd commands.CreateUserCommand
	var err error
	if cmd.FirstName, err = domain.NewFirstName(req.FirstName); err != nil {
		return commands.CreateUserCommand{}, err
	}
	if cmd.LastName, err = domain.NewLastName(req.LastName); err != nil {
		return commands.CreateUserCommand{}, err
	}
	if cmd.Email, err = types.NewEmailAddress(req.Email); err != nil {
		return commands.CreateUserCommand{}, err
	}
	if cmd.CountryTermID, err = types.ParseTermID(req.CountryTermID); err != nil {
		return commands.CreateUserCommand{}, err
	}
	if req.Demographics != nil {
		d, err := parseDemographics(req.Demographics)
		if err != nil {
			return commands.CreateUserCommand{}, err
		}
		cmd.Demographics = &d
	}
	return cmd, nil
}

func (req updateUserRequest) toCommand(id types.UserID) (commands.UpdateUserCommand, error) {
	cmd := commands.UpdateUserCommand{UserID: id}
	if req.FirstName != nil {
		v, err := domain.NewFirstName(*req.FirstName)
		if err != nil {
			return commands.UpdateUserCommand{}, err
		}
		cmd.FirstName = &v
	}
	if req.LastName != nil {
		v, err := domain.NewLastName(*req.LastName)
		if err != nil {
			return commands.UpdateUserCommand{}, err
		}
		cmd.LastName = &v
	}
	if req.CountryTermID != nil {
		v, err := types.ParseTermID(*req.CountryTermID)
		if err != nil {
			return commands.UpdateUserCommand{}, err
		}
		cmd.CountryTermID = &v
	}
	if req.Email != nil {
		v, err := types.NewEmailAddress(*req.Email)
		if err != nil {
			return commands.UpdateUserCommand{}, err
		}
		cmd.Email = &v
	}
	if req.Demographics != nil {
		v, err := parseDemographics(req.Demographics)
		if err != nil {
			return commands.UpdateUserCommand{}, err
		}
		cmd.Demographics = &v
	}
	return cmd, nil
}

func parseDemographics(raw map[string][]string) (domain.Demographics, error) {
	entries := make(map[types.TaxonomyID][]string, len(raw))
	for key, values := range raw {
		id, err := types.ParseTaxonomyID(key)
		if err != nil {
			return domain.Demographics{}, err
		}
		entries[id] = values
	}
	return domain.NewDemographics(entries)
}
