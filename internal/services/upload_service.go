package services

import (
	"context"
	"mime/multipart"
	"path/filepath"
	"strings"

	"messmet_backend/internal/config"
	"messmet_backend/internal/imageprocessor"
	"messmet_backend/internal/logger"
	"messmet_backend/internal/storage"
	"messmet_backend/pkg/apperrors"
)

// UploadService — проверка и сохранение загружаемых файлов.
// Скриншоты оплат, меню, фото галереи и аватары идут через него.
type UploadService struct {
	storage   storage.Storage
	processor *imageprocessor.Processor
	cfg       *config.Config
}

func NewUploadService(st storage.Storage, processor *imageprocessor.Processor, cfg *config.Config) *UploadService {
	return &UploadService{
		storage:   st,
		processor: processor,
		cfg:       cfg,
	}
}

// Store проверяет размер и тип файла и сохраняет его в хранилище.
// Возвращает путь объекта.
func (s *UploadService) Store(ctx context.Context, fh *multipart.FileHeader, category string) (string, error) {
	if fh.Size > s.cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if !s.typeAllowed(contentType) {
		return "", apperrors.ErrInvalidFileType
	}

	file, err := fh.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	path := storage.ObjectPath(category, fh.Filename)
	if err := s.storage.Save(ctx, path, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "file stored", "path", path, "size", fh.Size)
	return path, nil
}

// StoreImageWithThumbnail сохраняет оригинал и миниатюру для галереи.
// Миниатюра кладется рядом с суффиксом _thumb.
func (s *UploadService) StoreImageWithThumbnail(ctx context.Context, fh *multipart.FileHeader, category string) (string, error) {
	if fh.Size > s.cfg.Upload.MaxSize {
		return "", apperrors.ErrFileTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	format := imageFormat(contentType)
	if format == "" {
		return "", apperrors.ErrInvalidFileType
	}

	file, err := fh.Open()
	if err != nil {
		return "", apperrors.InternalError(err)
	}
	defer file.Close()

	path := storage.ObjectPath(category, fh.Filename)
	if err := s.storage.Save(ctx, path, file, contentType); err != nil {
		return "", apperrors.InternalError(err)
	}

	// Миниатюра best-effort: битое изображение не валит загрузку
	if _, err := file.Seek(0, 0); err == nil {
		thumb, err := s.processor.ProcessImage(file, imageprocessor.SizeThumbnail, format)
		if err != nil {
			logger.CtxWarn(ctx, "thumbnail generation failed", "path", path, "error", err)
		} else {
			thumbPath := thumbnailPath(path)
			if err := s.storage.Save(ctx, thumbPath, thumb, contentType); err != nil {
				logger.CtxWarn(ctx, "thumbnail save failed", "path", thumbPath, "error", err)
			}
		}
	}

	return path, nil
}

// Delete удаляет объект из хранилища, best-effort.
func (s *UploadService) Delete(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.storage.Delete(ctx, path); err != nil {
		logger.CtxWarn(ctx, "file delete failed", "path", path, "error", err)
	}
	// Миниатюры может не быть, ошибку не логируем
	_ = s.storage.Delete(ctx, thumbnailPath(path))
}

// URL — публичная ссылка на объект.
func (s *UploadService) URL(ctx context.Context, path string) string {
	if path == "" {
		return ""
	}
	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		return ""
	}
	return url
}

func (s *UploadService) typeAllowed(contentType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if contentType == allowed {
			return true
		}
	}
	return false
}

func imageFormat(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return "jpeg"
	case "image/png":
		return "png"
	default:
		return ""
	}
}

func thumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
