package utils

import (
	"encoding/json"
	"net/http"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

func ReadJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	return decoder.Decode(dst)
}

// FailureResponse writes the uniform {success:false, message} envelope.
func FailureResponse(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// SuccessResponse writes {success:true} merged with the given payload fields.
func SuccessResponse(w http.ResponseWriter, payload map[string]interface{}) {
	response := map[string]interface{}{
		"success": true,
	}
	for k, v := range payload {
		response[k] = v
	}
	WriteJSON(w, http.StatusOK, response)
}
