package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxUploadSize максимальный размер multipart запроса с фото
	MaxUploadSize = 5 << 20
	photoField    = "photo"
)

// errUnsupportedPhoto возвращается для файлов с неподдерживаемым расширением
var errUnsupportedPhoto = errors.New("photo must be a .jpg, .jpeg, .png, .gif or .webp image")

var photoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Uploads сохраняет загруженные фотографии в каталог на диске
type Uploads struct {
	dir string
}

// NewUploads создает Uploads; каталог создается при первой загрузке
func NewUploads(dir string) *Uploads {
	return &Uploads{dir: dir}
}

// Dir возвращает каталог с файлами
func (u *Uploads) Dir() string {
	return u.dir
}

// parseForm разбирает multipart или url-encoded форму
func parseForm(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return r.ParseMultipartForm(MaxUploadSize)
	}
	return r.ParseForm()
}

// SavePhoto сохраняет файл из поля photo и возвращает имя файла.
// Пустая строка без ошибки означает, что файла в запросе нет.
func (u *Uploads) SavePhoto(r *http.Request) (string, error) {
	file, header, err := r.FormFile(photoField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read photo: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !photoExtensions[ext] {
		return "", errUnsupportedPhoto
	}

	if err := os.MkdirAll(u.dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create upload dir: %w", err)
	}

	name := uuid.New().String() + ext
	dst, err := os.OpenFile(filepath.Join(u.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}

	if _, err := io.Copy(dst, file); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close photo file: %w", err)
	}

	return name, nil
}

// Remove удаляет ранее сохраненное фото. Пустое имя и отсутствующий файл не ошибка.
func (u *Uploads) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(u.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove photo: %w", err)
	}
	return nil
}

// discardPhoto удаляет файл, который больше не нужен; ошибка только логируется
func (h responder) discardPhoto(ctx context.Context, uploads *Uploads, name string) {
	if err := uploads.Remove(name); err != nil {
		h.logger.WarnContext(ctx, "failed to remove photo", slog.String("photo", name), slog.Any("error", err))
	}
}
