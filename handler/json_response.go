package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
)

const contentTypeJSON = "application/json; charset=utf-8"

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j *jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	// Encode before writing headers so encoding failures can still become
	// a proper error response.
	b, err := json.Marshal(j.body)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(j.status)
	_, err = w.Write(append(b, '\n'))
	return err
}

// RawJSON renders v as the whole response body with status 200.
func RawJSON(v any) Response {
	return &jsonResponse{status: http.StatusOK, body: v}
}

// JSONError renders err inside the {"error": ...} envelope. The status comes
// from an HTTPError in the chain, 500 otherwise.
func JSONError(err error) Response {
	status, detail := errorToDetail(err)
	return &jsonResponse{status: status, body: ErrorResponse{Error: detail}}
}
// errorToDetail never exposes the text of unclassified errors.
func errorToDetail(err error) (int, ErrorDetail) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, ErrorDetail{Code: httpErr.Key, Message: httpErr.Text()}
	}
	return http.StatusInternalServerError, ErrorDetail{
		Code:    ErrInternal.Key,
		Message: ErrInternal.Text(),
	}
}
