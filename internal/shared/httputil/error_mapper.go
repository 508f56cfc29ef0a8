package httputil

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorInfo contains the HTTP status, machine kind and message for an error.
type HTTPErrorInfo struct {
	Status  int
	Kind    string
	Message string
}

// ErrorMapping represents a single error to HTTP response mapping.
type ErrorMapping struct {
	Error   error
	Status  int
	Kind    string
	Message string
}

// ErrorBody is the JSON payload written for failed requests.
type ErrorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// ErrorMapper maps domain errors to HTTP responses. Mappings are checked in
// registration order with errors.Is.
type ErrorMapper struct {
	mappings       []ErrorMapping
	defaultStatus  int
	defaultKind    string
	defaultMessage string
}

func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		defaultStatus:  http.StatusInternalServerError,
		defaultKind:    "unknown",
		defaultMessage: "internal server error",
	}
}

func (m *ErrorMapper) WithMapping(err error, status int, kind, message string) *ErrorMapper {
	m.mappings = append(m.mappings, ErrorMapping{Error: err, Status: status, Kind: kind, Message: message})
	return m
}

func (m *ErrorMapper) WithDefault(status int, kind, message string) *ErrorMapper {
	m.defaultStatus = status
	m.defaultKind = kind
	m.defaultMessage = message
	return m
}

func (m *ErrorMapper) Map(err error) HTTPErrorInfo {
	if err == nil {
		return HTTPErrorInfo{Status: http.StatusOK}
	}

	for _, mapping := range m.mappings {
		if errors.Is(err, mapping.Error) {
			return HTTPErrorInfo{Status: mapping.Status, Kind: mapping.Kind, Message: mapping.Message}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPErrorInfo{Status: http.StatusGatewayTimeout, Kind: "timeout", Message: "request timeout"}
	}
	if errors.Is(err, context.Canceled) {
		return HTTPErrorInfo{Status: http.StatusServiceUnavailable, Kind: "cancelled", Message: "request cancelled"}
	}

	return HTTPErrorInfo{Status: m.defaultStatus, Kind: m.defaultKind, Message: m.defaultMessage}
}

// Respond writes the mapped error as JSON.
func (m *ErrorMapper) Respond(c echo.Context, err error) error {
	info := m.Map(err)
	return c.JSON(info.Status, ErrorBody{Error: info.Message, Kind: info.Kind})
}
