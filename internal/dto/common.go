package dto

// SuccessResponse — стандартный ответ админ-мутаций.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Success(message string) SuccessResponse {
	return SuccessResponse{Success: true, Message: message}
}

// Pagination — метаданные постраничного вывода.
type Pagination struct {
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}
