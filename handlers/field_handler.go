package handlers

import (
	"net/http"

	"github.com/tournify/tournament-manager/services"
)

type FieldHandler struct {
	fieldService services.FieldService
}

func NewFieldHandler(fs services.FieldService) *FieldHandler {
	return &FieldHandler{fieldService: fs}
}

// CreateField godoc
// @Summary Create a playing field
// @Tags fields
// @Accept json
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Param body body services.CreateFieldInput true "Field data"
// @Success 201 {object} models.Field
// @Failure 422 {object} map[string]string "Validation failed"
// @Router /tournaments/{tournamentID}/fields [post]
func (h *FieldHandler) CreateField(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.CreateFieldInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	input.TournamentID = tournamentID

	field, err := h.fieldService.CreateField(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, field, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListFields godoc
// @Summary List tournament fields
// @Tags fields
// @Produce json
// @Param tournamentID path int true "Tournament ID"
// @Success 200 {array} models.Field "In scheduling order"
// @Router /tournaments/{tournamentID}/fields [get]
func (h *FieldHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := getIDFromURL(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	fields, err := h.fieldService.ListFields(r.Context(), tournamentID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, fields, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeleteField godoc
// @Summary Delete a field
// @Tags fields
// @Param fieldID path int true "Field ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Field not found"
// @Router /fields/{fieldID} [delete]
func (h *FieldHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	fieldID, err := getIDFromURL(r, "fieldID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.fieldService.DeleteField(r.Context(), fieldID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
