package filter

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID generates a fresh time-ordered UUID and stores it on the
// context; it appears in the XML body of any error this request later
// produces.
func RequestID(req *http.Request, data *S3Data) error {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	data.RequestID = id.String()
	return nil
}
