package domain

import "encoding/json"

// Attempt is one saved practice run. The payload is opaque to the
// server; it is stored and returned as-is.
type Attempt struct {
	ID        string          `json:"id"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt int64           `json:"createdAt"` // unix millis
}
