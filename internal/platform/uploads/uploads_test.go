package uploads_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdulmosenAlmuzaini/malek/internal/apperrors"
	"github.com/AbdulmosenAlmuzaini/malek/internal/platform/uploads"
)

func multipartContext(t *testing.T, filename, content string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if filename != "" {
		part, err := writer.CreateFormFile("attachment", filename)
		require.NoError(t, err)
		_, err = part.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", &buf)
	c.Request.Header.Set("Content-Type", writer.FormDataContentType())
	return c
}

func TestSaveFromForm_StoresAllowedFile(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	c := multipartContext(t, "receipt.pdf", "pdf-bytes")
	path, err := store.SaveFromForm(c, "attachment")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/"))
	assert.True(t, strings.HasSuffix(path, ".pdf"))
}

func TestSaveFromForm_MissingFileIsNotAnError(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	c := multipartContext(t, "", "")
	path, err := store.SaveFromForm(c, "attachment")

	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestSaveFromForm_DisallowedExtensionRejected(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	c := multipartContext(t, "malware.exe", "nope")
	path, err := store.SaveFromForm(c, "attachment")

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, path)
}

func TestSaveFromForm_ExtensionCaseInsensitive(t *testing.T) {
	store, err := uploads.NewStore(t.TempDir())
	require.NoError(t, err)

	c := multipartContext(t, "scan.PDF", "pdf-bytes")
	path, err := store.SaveFromForm(c, "attachment")

	require.NoError(t, err)
	assert.NotEmpty(t, path)
}
