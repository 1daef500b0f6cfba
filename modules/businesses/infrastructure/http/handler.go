// Package http provides HTTP handlers for the businesses module.
package http

import (
	"net/http"

	"github.com/rai/clean-directory-go/internal/platform/httpserver"
	"github.com/rai/clean-directory-go/modules/businesses/application/commands"
	"github.com/rai/clean-directory-go/modules/businesses/application/queries"
	"github.com/rai/clean-directory-go/modules/businesses/domain"
	"github.com/rai/clean-directory-go/modules/shared/types"
)

// Handler handles HTTP requests for the businesses module.
type Handler struct {
	create     *commands.CreateBusinessHandler
	update     *commands.UpdateBusinessHandler
	softDelete *commands.SoftDeleteBusinessHandler
	restore    *commands.RestoreBusinessHandler
	hardDelete *commands.DeleteBusinessHandler
	get        *queries.GetBusinessHandler
	list       *queries.ListBusinessesHandler
}

func NewHandler(
	create *commands.CreateBusinessHandler,
	update *commands.UpdateBusinessHandler,
	softDelete *commands.SoftDeleteBusinessHandler,
	restore *commands.RestoreBusinessHandler,
	hardDelete *commands.DeleteBusinessHandler,
	get *queries.GetBusinessHandler,
	list *queries.ListBusinessesHandler,
) *Handler {
	return &Handler{
		create:     create,
		update:     update,
		softDelete: softDelete,
		restore:    restore,
		hardDelete: hardDelete,
		get:        get,
		list:       list,
	}
}

// RegisterRoutes registers the businesses module routes to the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /businesses", h.handleList)
	mux.HandleFunc("POST /businesses/search", h.handleSearch)
	mux.HandleFunc("POST /businesses", h.handleCreate)
	mux.HandleFunc("GET /businesses/{id}", h.handleGet)
	mux.HandleFunc("PATCH /businesses/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /businesses/{id}", h.handleDelete)
	mux.HandleFunc("POST /businesses/{id}/soft-delete", h.handleSoftDelete)
	mux.HandleFunc("POST /businesses/{id}/restore", h.handleRestore)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createBusinessRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	cmd, err := req.toCommand()
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	business, err := h.create.Handle(r.Context(), cmd)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, queries.ToBusinessDTO(business))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseBusinessID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	business, err := h.get.Handle(r.Context(), queries.GetBusinessQuery{BusinessID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	if business == nil {
		httpserver.HandleError(w, r, domain.ErrBusinessNotFound)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, business)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseBusinessID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	var req updateBusinessRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	cmd, err := req.toCommand(id)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	business, err := h.update.Handle(r.Context(), cmd)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToBusinessDTO(business))
}

func (h *Handler) handleSoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseBusinessID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	business, err := h.softDelete.Handle(r.Context(), commands.SoftDeleteBusinessCommand{BusinessID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToBusinessDTO(business))
}

func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseBusinessID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	business, err := h.restore.Handle(r.Context(), commands.RestoreBusinessCommand{BusinessID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToBusinessDTO(business))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseBusinessID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	if err := h.hardDelete.Handle(r.Context(), commands.DeleteBusinessCommand{BusinessID: id}); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
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
		Name:     httpserver.QueryStringFilter(r, "name"),
		Email:    httpserver.QueryStringFilter(r, "email"),
		City:     httpserver.QueryValueFilter(httpserver.QueryString(r, "city")),
		Tag:      httpserver.QueryValueFilter(httpserver.QueryString(r, "tag")),
		Platform: httpserver.QueryValueFilter(httpserver.QueryString(r, "platform")),
		Deleted:  httpserver.QueryValueFilter(deleted),
	}

	h.respondList(w, r, queries.ListBusinessesQuery{Filter: filter, Limit: limit, Offset: offset})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchBusinessesRequest
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

	h.respondList(w, r, queries.ListBusinessesQuery{Filter: req.Filter, Limit: limit, Offset: req.Offset})
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, query queries.ListBusinessesQuery) {
	result, err := h.list.Handle(r.Context(), query)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, result)
}
