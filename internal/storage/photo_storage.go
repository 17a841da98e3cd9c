package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Бакеты файлового хранилища.
const (
	BucketGiftCards    = "gift-cards"
	BucketMemberPhotos = "member-photos"
	BucketSignatures   = "signatures"
)

var allowedBuckets = map[string]bool{
	BucketGiftCards:    true,
	BucketMemberPhotos: true,
	BucketSignatures:   true,
}

// PhotoStorage представляет файловое хранилище загруженных изображений.
// Хранит байты на диске и отдаёт публичные URL; в записях базы лежат
// только URL, никогда сами байты.
type PhotoStorage struct {
	rootPath       string
	publicBaseURL  string
	maxUploadBytes int64
}

// NewPhotoStorage создаёт файловое хранилище.
func NewPhotoStorage(rootPath, publicBaseURL string, maxUploadMB int64) (*PhotoStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &PhotoStorage{
		rootPath:       rootPath,
		publicBaseURL:  strings.TrimSuffix(publicBaseURL, "/"),
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// Save сохраняет файл в бакет и возвращает относительный путь.
func (s *PhotoStorage) Save(ctx context.Context, bucket, originalName string, r io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}
	if !allowedBuckets[bucket] {
		return "", 0, fmt.Errorf("storage: неизвестный бакет %q", bucket)
	}

	safeName := sanitizeFilename(originalName)
	fileName := fmt.Sprintf("%s-%d%s", strings.TrimSuffix(bucket, "s"), time.Now().UnixNano(), filepath.Ext(safeName))

	bucketDir := filepath.Join(s.rootPath, bucket)
	if err := os.MkdirAll(bucketDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать каталог бакета: %w", err)
	}

	targetPath := filepath.Join(bucketDir, fileName)
	tempPath := targetPath + ".tmp"

	f, err := os.Create(tempPath)
	if err != nil {
		return "", 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limitedReader := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(tempPath)
		return "", 0, fmt.Errorf("storage: размер файла превышает лимит %d байт", s.maxUploadBytes)
	}

	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	if err := os.Rename(tempPath, targetPath); err != nil {
		return "", 0, fmt.Errorf("storage: не удалось переименовать файл: %w", err)
	}

	return filepath.Join(bucket, fileName), written, nil
}

// PublicURL возвращает абсолютный URL сохранённого файла.
func (s *PhotoStorage) PublicURL(relativePath string) string {
	return s.publicBaseURL + "/media/" + filepath.ToSlash(relativePath)
}

// Delete удаляет файл из хранилища.
func (s *PhotoStorage) Delete(ctx context.Context, relativePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target := filepath.Join(s.rootPath, relativePath)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: не удалось удалить файл: %w", err)
	}
	return nil
}

// sanitizeFilename удаляет потенциально опасные символы.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "..", "")
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		name = "photo"
	}
	return name
}
