// Package http provides HTTP handlers for the taxonomies module.
// Handlers turn raw request input into value objects before calling
// commands, so invalid input never reaches the repository.
package http

import (
	"net/http"

	"github.com/rai/clean-directory-go/internal/platform/httpserver"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/taxonomies/application/commands"
	"github.com/rai/clean-directory-go/modules/taxonomies/application/queries"
	"github.com/rai/clean-directory-go/modules/taxonomies/domain"
)

// Handler handles HTTP requests for the taxonomies module.
type Handler struct {
	create     *commands.CreateTaxonomyHandler
	update     *commands.UpdateTaxonomyHandler
	softDelete *commands.SoftDeleteTaxonomyHandler
	restore    *commands.RestoreTaxonomyHandler
	hardDelete *commands.DeleteTaxonomyHandler
	get        *queries.GetTaxonomyHandler
	list       *queries.ListTaxonomiesHandler
}

func NewHandler(
	create *commands.CreateTaxonomyHandler,
	update *commands.UpdateTaxonomyHandler,
	softDelete *commands.SoftDeleteTaxonomyHandler,
	restore *commands.RestoreTaxonomyHandler,
	hardDelete *commands.DeleteTaxonomyHandler,
	get *queries.GetTaxonomyHandler,
	list *queries.ListTaxonomiesHandler,
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

// RegisterRoutes registers the taxonomies module routes to the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /taxonomies", h.handleList)
	mux.HandleFunc("POST /taxonomies/search", h.handleSearch)
	mux.HandleFunc("POST /taxonomies", h.handleCreate)
	mux.HandleFunc("GET /taxonomies/{id}", h.handleGet)
	mux.HandleFunc("PATCH /taxonomies/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /taxonomies/{id}", h.handleDelete)
	mux.HandleFunc("POST /taxonomies/{id}/soft-delete", h.handleSoftDelete)
	mux.HandleFunc("POST /taxonomies/{id}/restore", h.handleRestore)
}

// Request DTOs

type createTaxonomyRequest struct {
	ParentID    *string `json:"parent_id"`
	Name        string  `json:"name"`
	Visible     *bool   `json:"visible"`
	Description *string `json:"description"`
}

type updateTaxonomyRequest struct {
	ParentID    *string `json:"parent_id"`
	Name        *string `json:"name"`
	Visible     *bool   `json:"visible"`
	Description *string `json:"description"`
}

type searchTaxonomiesRequest struct {
	Filter queries.Filter `json:"filter"`
	Limit  *int           `json:"limit"`
	Offset int            `json:"offset"`
}

// Handlers

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTaxonomyRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	cmd, err := req.toCommand()
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	taxonomy, err := h.create.Handle(r.Context(), cmd)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, queries.ToTaxonomyDTO(taxonomy))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTaxonomyID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	taxonomy, err := h.get.Handle(r.Context(), queries.GetTaxonomyQuery{TaxonomyID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	if taxonomy == nil {
		httpserver.HandleError(w, r, domain.ErrTaxonomyNotFound)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, taxonomy)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTaxonomyID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	var req updateTaxonomyRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	cmd, err := req.toCommand(id)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	taxonomy, err := h.update.Handle(r.Context(), cmd)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToTaxonomyDTO(taxonomy))
}

func (h *Handler) handleSoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTaxonomyID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	taxonomy, err := h.softDelete.Handle(r.Context(), commands.SoftDeleteTaxonomyCommand{TaxonomyID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToTaxonomyDTO(taxonomy))
}

func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTaxonomyID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	taxonomy, err := h.restore.Handle(r.Context(), commands.RestoreTaxonomyCommand{TaxonomyID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToTaxonomyDTO(taxonomy))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTaxonomyID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	if err := h.hardDelete.Handle(r.Context(), commands.DeleteTaxonomyCommand{TaxonomyID: id}); err != nil {
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
	visible, err := httpserver.QueryBool(r, "visible")
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
		ParentID:    httpserver.QueryValueFilter(httpserver.QueryString(r, "parent_id")),
		Name:        httpserver.QueryStringFilter(r, "name"),
		Description: httpserver.QueryStringFilter(r, "description"),
		Visible:     httpserver.QueryValueFilter(visible),
		Deleted:     httpserver.QueryValueFilter(deleted),
	}

	h.respondList(w, r, queries.ListTaxonomiesQuery{Filter: filter, Limit: limit, Offset: offset})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchTaxonomiesRequest
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

	h.respondList(w, r, queries.ListTaxonomiesQuery{Filter: req.Filter, Limit: limit, Offset: req.Offset})
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, query queries.ListTaxonomiesQuery) {
	result, err := h.list.Handle(r.Context(), query)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, result)
}

// Input mapping

func (req createTaxonomyRequest) toCommand() (commands.CreateTaxonomyCommand, error) {
	name, err := domain.NewTaxonomyName(req.Name)
	if err != nil {
		return commands.CreateTaxonomyCommand{}, err
	}
	cmd := commands.CreateTaxonomyCommand{Name: name, Visible: true}
	if req.Visible != nil {
		cmd.Visible = *req.Visible
	}
	if cmd.ParentID, err = parseOptionalID(req.ParentID); err != nil {
		return commands.CreateTaxonomyCommand{}, err
	}
	if cmd.Description, err = parseOptionalDescription(req.Description); err != nil {
		return commands.CreateTaxonomyCommand{}, err
	}
	return cmd, nil
}

func (req updateTaxonomyRequest) toCommand(id types.TaxonomyID) (commands.UpdateTaxonomyCommand, error) {
	cmd := commands.UpdateTaxonomyCommand{TaxonomyID: id, Visible: req.Visible}
	var err error
	if req.Name != nil {
		name, err := domain.NewTaxonomyName(*req.Name)
		if err != nil {
			return commands.UpdateTaxonomyCommand{}, err
		}
		cmd.Name = &name
	}
	if cmd.ParentID, err = parseOptionalID(req.ParentID); err != nil {
		return commands.UpdateTaxonomyCommand{}, err
	}
	if cmd.Description, err = parseOptionalDescription(req.Description); err != nil {
		return commands.UpdateTaxonomyCommand{}, err
	}
	return cmd, nil
}

func parseOptionalID(raw *string) (*types.TaxonomyID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := types.ParseTaxonomyID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDescription(raw *string) (*domain.TaxonomyDescription, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := domain.NewTaxonomyDescription(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
