package dto

// UploadMenuRequest — multipart: file и image идут отдельными частями.
type UploadMenuRequest struct {
	Month int    `form:"month" validate:"required,min=1,max=12"`
	Year  int    `form:"year" validate:"required,min=2000,max=2100"`
	Text  string `form:"text" validate:"omitempty,max=10000"`
}
