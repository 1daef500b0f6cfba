// Package http provides HTTP handlers for the terms module.
// Handlers turn raw request input into value objects before calling
// commands, so invalid input never reaches the repository.
package http

import (
	"net/http"

	"github.com/rai/clean-directory-go/internal/platform/httpserver"
	"github.com/rai/clean-directory-go/modules/shared/types"
	"github.com/rai/clean-directory-go/modules/terms/application/commands"
	"github.com/rai/clean-directory-go/modules/terms/application/queries"
	"github.com/rai/clean-directory-go/modules/terms/domain"
)

// Handler handles HTTP requests for the terms module.
type Handler struct {
	create     *commands.CreateTermHandler
	update     *commands.UpdateTermHandler
	softDelete *commands.SoftDeleteTermHandler
	restore    *commands.RestoreTermHandler
	hardDelete *commands.DeleteTermHandler
	get        *queries.GetTermHandler
	list       *queries.ListTermsHandler
}

func NewHandler(
	create *commands.CreateTermHandler,
	update *commands.UpdateTermHandler,
	softDelete *commands.SoftDeleteTermHandler,
	restore *commands.RestoreTermHandler,
	hardDelete *commands.DeleteTermHandler,
	get *queries.GetTermHandler,
	list *queries.ListTermsHandler,
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

// RegisterRoutes registers the terms module routes to the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /terms", h.handleList)
	mux.HandleFunc("POST /terms/search", h.handleSearch)
	mux.HandleFunc("POST /terms", h.handleCreate)
	mux.HandleFunc("GET /terms/{id}", h.handleGet)
	mux.HandleFunc("PATCH /terms/{id}", h.handleUpdate)
	mux.HandleFunc("DELETE /terms/{id}", h.handleDelete)
	mux.HandleFunc("POST /terms/{id}/soft-delete", h.handleSoftDelete)
	mux.HandleFunc("POST /terms/{id}/restore", h.handleRestore)
}

// Request DTOs

type createTermRequest struct {
	TaxonomyID  string  `json:"taxonomy_id"`
	ParentID    *string `json:"parent_id"`
	Name        string  `json:"name"`
	Visible     *bool   `json:"visible"`
	Description *string `json:"description"`
}

type updateTermRequest struct {
	TaxonomyID  *string `json:"taxonomy_id"`
	ParentID    *string `json:"parent_id"`
	Name        *string `json:"name"`
	Visible     *bool   `json:"visible"`
	Description *string `json:"description"`
}

type searchTermsRequest struct {
	Filter queries.Filter `json:"filter"`
	Limit  *int           `json:"limit"`
	Offset int            `json:"offset"`
}

// Handlers

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createTermRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	cmd, err := req.toCommand()
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	term, err := h.create.Handle(r.Context(), cmd)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, queries.ToTermDTO(term))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTermID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	term, err := h.get.Handle(r.Context(), queries.GetTermQuery{TermID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	if term == nil {
		httpserver.HandleError(w, r, domain.ErrTermNotFound)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, term)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTermID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	var req updateTermRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	cmd, err := req.toCommand(id)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	term, err := h.update.Handle(r.Context(), cmd)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToTermDTO(term))
}

func (h *Handler) handleSoftDelete(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTermID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	term, err := h.softDelete.Handle(r.Context(), commands.SoftDeleteTermCommand{TermID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToTermDTO(term))
}

func (h *Handler) handleRestore(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTermID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	term, err := h.restore.Handle(r.Context(), commands.RestoreTermCommand{TermID: id})
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, queries.ToTermDTO(term))
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := types.ParseTermID(r.PathValue("id"))
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}

	if err := h.hardDelete.Handle(r.Context(), commands.DeleteTermCommand{TermID: id}); err != nil {
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
		TaxonomyID:  httpserver.QueryValueFilter(httpserver.QueryString(r, "taxonomy_id")),
		ParentID:    httpserver.QueryValueFilter(httpserver.QueryString(r, "parent_id")),
		Name:        httpserver.QueryStringFilter(r, "name"),
		Description: httpserver.QueryStringFilter(r, "description"),
		Visible:     httpserver.QueryValueFilter(visible),
		Deleted:     httpserver.QueryValueFilter(deleted),
	}

	h.respondList(w, r, queries.ListTermsQuery{Filter: filter, Limit: limit, Offset: offset})
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchTermsRequest
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

	h.respondList(w, r, queries.ListTermsQuery{Filter: req.Filter, Limit: limit, Offset: req.Offset})
}

func (h *Handler) respondList(w http.ResponseWriter, r *http.Request, query queries.ListTermsQuery) {
	result, err := h.list.Handle(r.Context(), query)
	if err != nil {
		httpserver.HandleError(w, r, err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, result)
}

// Input mapping

func (req createTermRequest) toCommand() (commands.CreateTermCommand, error) {
	name, err := domain.NewTermName(req.Name)
	if err != nil {
		return commands.CreateTermCommand{}, err
	}
	taxonomyID, err := types.ParseTaxonomyID(req.TaxonomyID)
	if err != nil {
		return commands.CreateTermCommand{}, err
	}
	cmd := commands.CreateTermCommand{TaxonomyID: taxonomyID, Name: name, Visible: true}
	if req.Visible != nil {
		cmd.Visible = *req.Visible
	}
	if cmd.ParentID, err = parseOptionalID(req.ParentID); err != nil {
		return commands.CreateTermCommand{}, err
	}
	if cmd.Description, err = parseOptionalDescription(req.Description); err != nil {
		return commands.CreateTermCommand{}, err
	}
	return cmd, nil
}

func (req updateTermRequest) toCommand(id types.TermID) (commands.UpdateTermCommand, error) {
	cmd := commands.UpdateTermCommand{TermID: id, Visible: req.Visible}
	var err error
	if req.Name != nil {
		name, err := domain.NewTermName(*req.Name)
		if err != nil {
			return commands.UpdateTermCommand{}, err
		}
		cmd.Name = &name
	}
	if req.TaxonomyID != nil {
		taxonomyID, err := types.ParseTaxonomyID(*req.TaxonomyID)
		if err != nil {
			return commands.UpdateTermCommand{}, err
		}
		cmd.TaxonomyID = &taxonomyID
	}
	if cmd.ParentID, err = parseOptionalID(req.ParentID); err != nil {
		return commands.UpdateTermCommand{}, err
	}
	if cmd.Description, err = parseOptionalDescription(req.Description); err != nil {
		return commands.UpdateTermCommand{}, err
	}
	return cmd, nil
}

func parseOptionalID(raw *string) (*types.TermID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := types.ParseTermID(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseOptionalDescription(raw *string) (*domain.TermDescription, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := domain.NewTermDescription(*raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
