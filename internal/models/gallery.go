package models

// Галерея: записи для витрины сайта. Бизнес-правил нет,
// только флаг активности и порядок вывода.

type CarouselImage struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	Image       string `gorm:"not null" json:"image"`
	Description string `json:"description"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	Order       int    `gorm:"column:display_order;default:0" json:"order"`
}

type FoodImage struct {
	BaseModel
	Title    string `gorm:"not null" json:"title"`
	Image    string `gorm:"not null" json:"image"`
	IsActive bool   `gorm:"default:true" json:"is_active"`
	Order    int    `gorm:"column:display_order;default:0" json:"order"`
}

type StaffImage struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
	Order       int    `gorm:"column:display_order;default:0" json:"order"`
}

type OwnerImage struct {
	BaseModel
	Name        string `gorm:"not null" json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	IsActive    bool   `gorm:"default:true" json:"is_active"`
}
