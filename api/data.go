package api

type CreateDataRequest struct {
	Key     string `json:"key" binding:"required"`
	B64Data string `json:"b64_data" binding:"required"`
}

type CreateDataResponse struct {
	Key string `json:"key"`
}

type RetrieveDataResponse struct {
	B64Data string `json:"b64_data"`
}
