package config

import "github.com/vitrinehq/vitrine/internal/service/document"

// ConfigGetInput for GET /config
type ConfigGetInput struct {
	Profile string `query:"profile" default:"default" maxLength:"120" doc:"Profile id addressing the document" example:"default"`
}

// ConfigSaveInput for POST /config
type ConfigSaveInput struct {
	Profile string `query:"profile" default:"default" maxLength:"120" doc:"Profile id addressing the document" example:"default"`
	Body    document.Document
}
