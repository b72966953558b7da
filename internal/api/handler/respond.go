package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/kebo-sukses/calius-digital/internal/common"
)

func handleError(w http.ResponseWriter, err error) {
	common.RespondWithError(w, common.HTTPStatusFromError(err), err.Error())
}

func decodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", common.ErrBadRequest)
	}
	return nil
}

type mutationResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id,omitempty"`
}
