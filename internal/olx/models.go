package olx

import "encoding/json"

type AuthResponse struct {
	Token string `json:"token"`
}

// ListingResponse is the creation response. The API returns the listing ID
// as a bare number; json.Number keeps it lossless as a string key.
type ListingResponse struct {
	ID json.Number `json:"id"`
}
