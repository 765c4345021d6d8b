package api

// CreateDBMemeRequest is the database service's create body.
type CreateDBMemeRequest struct {
	MemeID  string  `json:"meme_id" binding:"required"`
	ImageID string  `json:"image_id" binding:"required"`
	Caption *string `json:"caption"`
}

type DBMemeResponse struct {
	MemeID  string  `json:"meme_id"`
	ImageID string  `json:"image_id"`
	Caption *string `json:"caption"`
}

// UpdateDBMemeRequest is a merge patch: nil fields are left untouched.
type UpdateDBMemeRequest struct {
	ImageID *string `json:"image_id,omitempty"`
	Caption *string `json:"caption,omitempty"`
}
