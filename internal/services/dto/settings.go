package dto

import "encoding/json"

type SetSettingRequest struct {
	Value json.RawMessage `json:"value"`
}

type SettingResponse struct {
	Category string          `json:"category"`
	Key      string          `json:"key"`
	Value    json.RawMessage `json:"value"`
}

// SettingNames is checked before any settings read or write.
type SettingNames struct {
	Category string `json:"category" validate:"setting_name"`
	Key      string `json:"key" validate:"omitempty,setting_name"`
}
