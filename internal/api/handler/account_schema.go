package handler

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available used"`
}

type importRequest struct {
	FilePath string `json:"filePath" validate:"required"`
}

type importResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}
