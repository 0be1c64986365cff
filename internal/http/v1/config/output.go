package config

import "github.com/vitrinehq/vitrine/internal/service/document"

// ConfigGetOutput for GET /config
type ConfigGetOutput struct {
	Body document.Document
}

// ConfigSaveOutput for POST /config
type ConfigSaveOutput struct {
	Body ConfigSaveBody
}

// ConfigSaveBody acknowledges a completed save.
type ConfigSaveBody struct {
	Success bool `json:"success" doc:"Always true on a completed save"`
}
