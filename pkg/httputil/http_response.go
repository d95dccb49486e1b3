package httputil

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type SuccessResponse struct {
	Success bool  `json:"success"`
	ID      int64 `json:"id,omitempty"`
}

// strictAPI rejects fields the target struct does not declare.
var strictAPI = sonic.Config{
	DisallowUnknownFields: true,
}.Froze()

var ErrEmptyBody = errors.New("empty request body")

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{
		Error: message,
	}
	if details != nil {
		resp.Details = details.Error()
	}
	WriteJSONResponse(w, statusCode, resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// MaxBodySize bounds request bodies; gallery images travel inline.
const MaxBodySize = 16 << 20

// DecodeJSON reads a single JSON object from r into dst.
func DecodeJSON(r io.Reader, dst any) error {
	if r == nil || r == http.NoBody {
		return ErrEmptyBody
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxBodySize))
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyBody
	}
	return strictAPI.Unmarshal(data, dst)
}
