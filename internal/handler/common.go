package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/forkful/forkful-go/internal/middleware"
)

// Envelope codes. Every response body is {code, msg, data}; code 1 means the
// operation succeeded and data is trustworthy, anything else is a handled
// failure explained by msg.
const (
	codeOK   = 1
	codeFail = 0
)

type envelope struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data"`
}

func writeEnvelope(w http.ResponseWriter, status int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(env)
}

// writeData writes a success envelope.
func writeData(w http.ResponseWriter, data any) {
	writeEnvelope(w, http.StatusOK, envelope{Code: codeOK, Msg: "success", Data: data})
}

// writeFail writes a handled-failure envelope. The message is shown to users
// as-is, so it must never carry internal detail.
func writeFail(w http.ResponseWriter, status int, msg string) {
	writeEnvelope(w, status, envelope{Code: codeFail, Msg: msg})
}

// parseID parses a decimal id from a path or query value.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// requireUser pulls the authenticated user from the context. The auth
// middleware guarantees it on protected routes; a miss means a wiring bug.
func requireUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeFail(w, http.StatusUnauthorized, "unauthorized")
		return 0, false
	}
	return userID, true
}

// decodeBody decodes a JSON request body into v, capping it at maxBytes.
// On failure it writes the error response and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if err.Error() == "http: request body too large" {
			writeFail(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		writeFail(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
