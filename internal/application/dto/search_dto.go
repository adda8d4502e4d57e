package dto

import "encoding/json"

// SearchHit coincidencia cruda del índice de búsqueda.
type SearchHit struct {
	ID     string          `json:"_id"`
	Index  string          `json:"_index,omitempty"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}
