package handlers

import (
	"log"
	"net/http"

	"github.com/jainam01/four-kids-updated-sub000/app/apperrors"
	"github.com/jainam01/four-kids-updated-sub000/app/helpers"
	"github.com/unrolled/render"
)

// respondError is the single place aggregate failures become status
// codes: validation 400 with field detail, not-found 404, anything
// else a generic 500 with the detail kept server-side.
func respondError(rnd *render.Render, w http.ResponseWriter, err error, logContext string) {
	if ve := apperrors.AsValidation(err); ve != nil {
		_ = rnd.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "Validation failed",
			"fields": ve.Fields,
		})
		return
	}

	if apperrors.IsNotFound(err) {
		_ = rnd.JSON(w, http.StatusNotFound, map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	log.Printf("%s: %v", logContext, err)
	_ = rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{
		"error": "Internal server error",
	})
}

func sessionID(r *http.Request) string {
	id, _ := r.Context().Value(helpers.ContextKeySessionID).(string)
	return id
}
