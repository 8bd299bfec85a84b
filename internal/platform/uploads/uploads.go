package uploads

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
)

// MaxAttachmentSize caps uploaded attachments at 10MB.
const MaxAttachmentSize = 10 << 20

// allowedExtensions is the attachment allow-list: images, PDF and
// common office formats.
var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
	".pdf": true, ".doc": true, ".docx": true,
	".xls": true, ".xlsx": true, ".zip": true,
}

// Store writes uploaded attachments under a directory and hands back
// path references. The rest of the system treats those references as
// opaque strings.
type Store struct {
	dir string
}

// NewStore creates the uploads directory if needed and returns a
// store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store writes to, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// SaveFromForm saves the optional attachment of a multipart request
// and returns its public path reference ("/uploads/<name>"). A missing
// file field returns "", nil; an oversized or disallowed file returns
// a validation error.
func (s *Store) SaveFromForm(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("%w: invalid attachment", apperrors.ErrValidation)
	}
	return s.save(file)
}

func (s *Store) save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxAttachmentSize {
		return "", fmt.Errorf("%w: attachment exceeds 10MB", apperrors.ErrValidation)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: attachment type not allowed", apperrors.ErrValidation)
	}

	name := uuid.NewString() + ext
	dst := filepath.Join(s.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return "", fmt.Errorf("failed to write attachment file: %w", err)
	}

	return "/uploads/" + name, nil
}
