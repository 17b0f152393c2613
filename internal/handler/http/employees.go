package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dquintero/hr-records/internal/logger"
	"github.com/dquintero/hr-records/internal/service"
	"github.com/dquintero/hr-records/internal/utils"
	"github.com/dquintero/hr-records/models"
)

// employeeIDFromURL parses the {id} route parameter.
func employeeIDFromURL(r *http.Request) (int64, error) {
	employeeID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || employeeID <= 0 {
		return 0, ErrInvalidEmployeeID
	}
	return employeeID, nil
}

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employees, err := h.services.EmployeeService.ListEmployees(ctx)
	if err != nil {
		log.Err(err).Msg("error listing employees")
		writeError(w, r, err)
		return
	}

	// an empty table is a valid result, not an error
	if employees == nil {
		employees = []models.Employee{}
	}

	response := models.APIResponse{Success: true, Data: employees}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing employees list")
	}
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employeeID, err := employeeIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("unparsable employee id")
		writeError(w, r, err)
		return
	}

	employee, err := h.services.EmployeeService.GetEmployee(ctx, employeeID)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("error getting employee")
		writeError(w, r, err)
		return
	}

	response := models.APIResponse{Success: true, Data: employee}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing employee")
	}
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var employee models.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	created, err := h.services.EmployeeService.CreateEmployee(ctx, employee)
	if err != nil {
		log.Err(err).Str("name", employee.Name).Msg("error creating employee")
		writeError(w, r, err)
		return
	}

	response := models.APIResponse{
		Success: true,
		Data:    created,
		Message: "employee created",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created employee")
	}
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employeeID, err := employeeIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("unparsable employee id")
		writeError(w, r, err)
		return
	}

	var update models.EmployeeUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	updated, err := h.services.EmployeeService.UpdateEmployee(ctx, employeeID, update)
	if err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("error updating employee")
		writeError(w, r, err)
		return
	}

	response := models.APIResponse{
		Success: true,
		Data:    updated,
		Message: "employee updated",
	}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing updated employee")
	}
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	employeeID, err := employeeIDFromURL(r)
	if err != nil {
		log.Err(err).Str("id", chi.URLParam(r, "id")).Msg("unparsable employee id")
		writeError(w, r, err)
		return
	}

	if err := h.services.EmployeeService.DeleteEmployee(ctx, employeeID); err != nil {
		log.Err(err).Int64("employee_id", employeeID).Msg("error deleting employee")
		writeError(w, r, err)
		return
	}

	response := models.APIResponse{Success: true, Message: "employee deleted"}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing delete response")
	}
}

// payroll returns the simulated salary view for the employee record linked
// to the authenticated account.
func (h *Handler) payroll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("payroll reached without identity")
		writeError(w, r, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	payroll, err := h.services.EmployeeService.Payroll(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("error getting payroll")
		writeError(w, r, err)
		return
	}

	response := models.APIResponse{Success: true, Data: payroll}
	if _, err := utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing payroll")
	}
}
