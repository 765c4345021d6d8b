package api

type CreateMemeRequest struct {
	MemeID  string  `json:"meme_id"`
	B64Data string  `json:"b64_data" binding:"required"`
	Caption *string `json:"caption"`
}

type CreateMemeResponse struct {
	MemeID string `json:"meme_id"`
}

type MemeResponse struct {
	B64Data string  `json:"b64_data"`
	Caption *string `json:"caption"`
}

type UpdateMemeRequest struct {
	B64Data *string `json:"b64_data"`
	Caption *string `json:"caption"`
}

type DeleteMemeResponse struct {
	MemeID  string  `json:"meme_id"`
	Caption *string `json:"caption"`
}

// ErrorResponse is the body sent with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}
