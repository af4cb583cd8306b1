package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"testing"

	"messmet_backend/database"
	"messmet_backend/internal/app"
	"messmet_backend/internal/config"
	"messmet_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// TestServer держит роутер и соединение с тестовой БД. Запросы идут
// напрямую через ServeHTTP, чтобы тестовая транзакция доезжала до
// хэндлеров через context (см. middleware.DBMiddleware).
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer создает и настраивает тестовый сервер и БД
func NewTestServer(t *testing.T) *TestServer {
	// Конфиг берет DATABASE_URL из окружения (режим тестов)
	config.LoadConfig()
	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Не удалось подключиться к тестовой БД (%s): %v", dsn, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Не удалось выполнить миграции тестовой БД: %v", err)
	}

	gin.SetMode(gin.TestMode)
	router, _ := app.SetupRouter(cfg, db)

	log.Printf("✅ Тестовый сервер готов, тестовая БД (%s) настроена.", dsn)

	return &TestServer{
		Router: router,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, _ := ts.DB.DB()
	sqlDB.Close()
}

// BeginTransaction открывает транзакцию, в которой живет один тест.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("Не удалось открыть транзакцию: %v", tx.Error)
	}
	return tx
}

// RollbackTransaction откатывает тестовую транзакцию (defer в каждом тесте).
func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
		t.Logf("Откат транзакции: %v", err)
	}
}

// SendRequest отправляет JSON-запрос через роутер внутри транзакции tx.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*http.Response, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, tx, req, token)
}

// SendForm отправляет multipart-форму без файлов.
func (ts *TestServer) SendForm(t *testing.T, tx *gorm.DB, method, path, token string, fields map[string]string) (*http.Response, string) {
	return ts.SendMultipart(t, tx, method, path, token, fields, "", "", nil)
}

// SendMultipart отправляет multipart-форму с одним файлом (fileField == "" - без файла).
func (ts *TestServer) SendMultipart(t *testing.T, tx *gorm.DB, method, path, token string, fields map[string]string, fileField, fileName string, fileContent []byte) (*http.Response, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Ошибка записи поля формы %s: %v", key, err)
		}
	}
	if fileField != "" {
		// CreateFormFile ставит octet-stream, а проверка загрузок смотрит
		// на Content-Type части, поэтому собираем заголовки сами
		partHeader := textproto.MIMEHeader{}
		partHeader.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fileField, fileName))
		contentType := mime.TypeByExtension(filepath.Ext(fileName))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		partHeader.Set("Content-Type", contentType)

		part, err := writer.CreatePart(partHeader)
		if err != nil {
			t.Fatalf("Ошибка добавления файла в форму: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("Ошибка записи файла в форму: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Ошибка закрытия multipart-формы: %v", err)
	}

	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return ts.do(t, tx, req, token)
}

func (ts *TestServer) do(t *testing.T, tx *gorm.DB, req *http.Request, token string) (*http.Response, string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	ts.Router.ServeHTTP(recorder, req)

	res := recorder.Result()
	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
