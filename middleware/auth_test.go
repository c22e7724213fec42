package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"invoicely/config"
	"invoicely/models"
	"invoicely/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// stubUserRepo serves exactly one user with a fixed token hash.
type stubUserRepo struct {
	user *models.User
}

func (s *stubUserRepo) GetByID(id string) (*models.User, error) { return s.GetByIDWithProjection(id, nil) }

func (s *stubUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(string) (*models.User, error) { return nil, nil }
func (s *stubUserRepo) Create(*models.User) error               { return nil }
func (s *stubUserRepo) UpdateTokenHash(string, string) error    { return nil }

func buildProtectedRouter(repo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuthMiddleware(repo), func(c *gin.Context) {
		id, _ := c.Get("userID")
		c.JSON(http.StatusOK, gin.H{"userID": id})
	})
	return r
}

func doRequest(t *testing.T, r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w
}

func init() {
	config.AppConfig.JWTSecret = "unit-test-secret"
}

func TestJWTAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	r := buildProtectedRouter(&stubUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, doRequest(t, r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, doRequest(t, r, "Bearer not-a-jwt").Code)
}

func TestJWTAuthMiddlewareAcceptsStoredToken(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "ada@example.com")
	require.NoError(t, err)

	repo := &stubUserRepo{user: &models.User{
		ID:        "user-1",
		TokenHash: utils.HashToken(token),
	}}
	r := buildProtectedRouter(repo)

	w := doRequest(t, r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestJWTAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	token, err := utils.GenerateToken("user-1", "ada@example.com")
	require.NoError(t, err)

	// Empty hash means the token was revoked.
	repo := &stubUserRepo{user: &models.User{ID: "user-1", TokenHash: ""}}
	r := buildProtectedRouter(repo)

	assert.Equal(t, http.StatusUnauthorized, doRequest(t, r, "Bearer "+token).Code)
}

func TestJWTAuthMiddlewareRejectsUnknownUser(t *testing.T) {
	token, err := utils.GenerateToken("ghost", "ghost@example.com")
	require.NoError(t, err)

	r := buildProtectedRouter(&stubUserRepo{})

	assert.Equal(t, http.StatusUnauthorized, doRequest(t, r, "Bearer "+token).Code)
}
