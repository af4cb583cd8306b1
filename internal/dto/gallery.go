package dto

// Формы галереи приходят multipart: изображение отдельным файлом.

type CarouselImageRequest struct {
	Title       string `form:"title" validate:"required,max=200"`
	Description string `form:"description" validate:"omitempty,max=1000"`
	Order       int    `form:"order"`
	IsActive    *bool  `form:"is_active"`
}

type FoodImageRequest struct {
	Title    string `form:"title" validate:"required,max=200"`
	Order    int    `form:"order"`
	IsActive *bool  `form:"is_active"`
}

type StaffImageRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Role        string `form:"role" validate:"omitempty,max=100"`
	Description string `form:"description" validate:"omitempty,max=1000"`
	Order       int    `form:"order"`
	IsActive    *bool  `form:"is_active"`
}

type OwnerImageRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Title       string `form:"title" validate:"omitempty,max=200"`
	Description string `form:"description" validate:"omitempty,max=1000"`
	IsActive    *bool  `form:"is_active"`
}
