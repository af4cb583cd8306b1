package models

// MonthlyMenu — меню на месяц, уникально по (month, year).
// Повторная загрузка обновляет запись на месте.
type MonthlyMenu struct {
	BaseModel
	Month     int    `gorm:"not null;uniqueIndex:idx_menu_month_year" json:"month"` // 1-12
	Year      int    `gorm:"not null;uniqueIndex:idx_menu_month_year" json:"year"`
	FilePath  string `json:"file"`
	ImagePath string `json:"image"`
	Text      string `json:"text"`
}
