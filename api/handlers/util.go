package handlers

import (
	"encoding/json"
	"net/http"
)

const REQUEST_ID_HEADER = "X-Request-ID"

func JSONError(w http.ResponseWriter, err error, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	type errorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	resp := errorResponse{
		Message: err.Error(),
		Code:    code,
	}
	_ = json.NewEncoder(w).Encode(resp)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
