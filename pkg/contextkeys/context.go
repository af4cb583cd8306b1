package contextkeys

// Кастомный тип ключа, чтобы избежать коллизий в context
type contextKey string

// DBContextKey - ключ, по которому в context хранится *gorm.DB
// (пул соединений или тестовая транзакция)
const DBContextKey = contextKey("db")
