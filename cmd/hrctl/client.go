package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/dquintero/hr-records/models"
)

var (
	errUnauthorized   = errors.New("unauthorized, log in again")
	errNotFound       = errors.New("not found")
	errServerRejected = errors.New("server rejected the request")
)

// apiClient is a thin resty wrapper over the hr-records REST API.
type apiClient struct {
	client *resty.Client

	token string
}

func newAPIClient(baseURL, token string, timeout time.Duration) *apiClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)

	return &apiClient{client: cli, token: token}
}

// Login exchanges credentials for a bearer token and keeps it for the
// remaining calls of this run.
func (a *apiClient) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"username": username, "password": password}).
		SetResult(&loginResponse).
		Post("/api/auth/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	a.token = loginResponse.Token

	return loginResponse, nil
}

// ListEmployees fetches every employee record.
func (a *apiClient) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	var response struct {
		Success bool              `json:"success"`
		Data    []models.Employee `json:"data"`
		Message string            `json:"message"`
	}

	resp, err := a.authed().
		SetContext(ctx).
		SetResult(&response).
		Get("/api/employees")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return response.Data, nil
}

// GetEmployee fetches a single employee record by id.
func (a *apiClient) GetEmployee(ctx context.Context, employeeID int64) (models.Employee, error) {
	var response struct {
		Success bool            `json:"success"`
		Data    models.Employee `json:"data"`
		Message string          `json:"message"`
	}

	resp, err := a.authed().
		SetContext(ctx).
		SetResult(&response).
		Get(fmt.Sprintf("/api/employees/%d", employeeID))
	if err != nil {
		return models.Employee{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return response.Data, nil
}

// Payroll fetches the simulated payroll view of the logged-in employee.
func (a *apiClient) Payroll(ctx context.Context) (models.Payroll, error) {
	var response struct {
		Success bool           `json:"success"`
		Data    models.Payroll `json:"data"`
		Message string         `json:"message"`
	}

	resp, err := a.authed().
		SetContext(ctx).
		SetResult(&response).
		Get("/api/employees/payroll")
	if err != nil {
		return models.Payroll{}, fmt.Errorf("payroll request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Payroll{}, err
	}

	return response.Data, nil
}

func (a *apiClient) authed() *resty.Request {
	return a.client.R().SetHeader("Authorization", "Bearer "+a.token)
}

func mapHTTPError(resp *resty.Response) error {
	switch {
	case resp.StatusCode() < 300:
		return nil
	case resp.StatusCode() == http.StatusUnauthorized:
		return errUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		return errNotFound
	default:
		return fmt.Errorf("%w: %s", errServerRejected, resp.Status())
	}
}
