package middleware

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// errorBody matches the REST error shape so clients see one format.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	body, _ := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(errorBody{Error: message, Code: code})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body) //nolint:errcheck
}
