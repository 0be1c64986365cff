package profiles

// ProfilesListInput for GET /profiles (no parameters)
type ProfilesListInput struct{}

// ProfileCreateInput for POST /profiles
type ProfileCreateInput struct {
	Body struct {
		// Name is checked in the handler so its absence maps to a plain
		// 400 instead of a schema validation error.
		Name *string `json:"name,omitempty" maxLength:"120" doc:"Display name for the new profile" example:"Jane Doe"`
	}
}
