package httpapi

import (
	"encoding/json"
	"net/http"

	"google.golang.org/grpc/status"

	"github.com/riyal-rj/Microservices-GRPC/internal/common"
)

func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorEnvelope{Success: false, Message: message})
}

// writeInternalError translates any transport-level backend failure into the
// single generic server-error response. Which backend failed is visible only
// in the error detail, never in the shape of the payload.
func writeInternalError(w http.ResponseWriter, err error) {
	detail := err.Error()
	if st, ok := status.FromError(err); ok {
		detail = st.Message()
	}
	writeJSON(w, http.StatusInternalServerError, errorEnvelope{
		Success: false,
		Message: common.MsgInternalError,
		Error:   detail,
	})
}
