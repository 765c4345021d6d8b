package api

type CreateImageRequest struct {
	B64Data string `json:"b64_data" binding:"required"`
}

type CreateImageResponse struct {
	ImageID string `json:"image_id"`
}

type RetrieveImageResponse struct {
	B64Data string `json:"b64_data"`
}

type UpdateImageRequest struct {
	B64Data string `json:"b64_data" binding:"required"`
}
