package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hopeactionjeunesse/hope-site/internal/domain/content"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("create: %w", content.ErrUnavailable), http.StatusServiceUnavailable, "datastore_unavailable"},
		{content.ErrInvalidFolder, http.StatusBadRequest, "invalid_folder"},
		{fmt.Errorf("%w: bad header", content.ErrNotImage), http.StatusBadRequest, "not_an_image"},
		{ErrBusinessMsg("file_too_large", ""), http.StatusBadRequest, "file_too_large"},
		{errors.New("boom"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		FromError(c, tc.err)

		assert.Equal(t, tc.status, w.Code, tc.code)
		var body HTTPError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Code)
		assert.NotEmpty(t, body.Message)
	}
}

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("upload: %w", ErrBusinessMsg("file_too_large", "trop gros"))
	assert.True(t, IsBusiness(err, "file_too_large"))
	assert.False(t, IsBusiness(err, "other"))
}
