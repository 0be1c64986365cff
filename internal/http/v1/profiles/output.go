package profiles

// ProfilesListOutput for GET /profiles
type ProfilesListOutput struct {
	Body ProfilesListBody
}

// ProfilesListBody carries the known profile ids.
type ProfilesListBody struct {
	Profiles []string `json:"profiles" doc:"Profile ids with a stored document"`
}

// ProfileCreateOutput for POST /profiles
type ProfileCreateOutput struct {
	Body ProfileCreateBody
}

// ProfileCreateBody reports the id derived for a created profile.
type ProfileCreateBody struct {
	Success   bool   `json:"success" doc:"Always true on a completed create"`
	ProfileID string `json:"profileId" doc:"Sanitized id derived from the display name" example:"jane-doe"`
}
