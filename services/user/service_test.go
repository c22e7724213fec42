package user

import (
	"testing"

	"invoicely/config"
	"invoicely/models"
	"invoicely/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// fakeUserRepo is an in-memory UserRepository for service tests.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByIDWithProjection(id string, _ bson.M) (*models.User, error) {
	return f.GetByID(id)
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) UpdateTokenHash(id, tokenHash string) error {
	u, ok := f.users[id]
	if !ok {
		return assert.AnError
	}
	u.TokenHash = tokenHash
	return nil
}

func init() {
	config.AppConfig.JWTSecret = "unit-test-secret"
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.RegisterUser("Ada", "Ada@Example.com", "hunter22")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ada", resp.Name)
	assert.Equal(t, "ada@example.com", resp.Email)
	assert.NotEmpty(t, resp.Token)

	// The token must resolve back to the new user's ID.
	sub, err := utils.ExtractIDFromToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, sub)

	stored := repo.users[resp.ID]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")))
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
}

func TestRegisterUserValidation(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	for _, tc := range [][3]string{
		{"", "a@b.com", "pw"},
		{"Ada", "", "pw"},
		{"Ada", "a@b.com", ""},
	} {
		_, err := svc.RegisterUser(tc[0], tc[1], tc[2])
		assert.Error(t, err)
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterUser("Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.RegisterUser("Imposter", "ada@example.com", "other")
	var dupErr DuplicateEmailError
	require.ErrorAs(t, err, &dupErr)
}

func TestAuthenticateUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	reg, err := svc.RegisterUser("Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	resp, err := svc.AuthenticateUser("ada@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.ID)
	assert.NotEmpty(t, resp.Token)

	// Login rotates the stored hash to the fresh token.
	assert.Equal(t, utils.HashToken(resp.Token), repo.users[reg.ID].TokenHash)
}

func TestAuthenticateUserInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.RegisterUser("Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	var credErr InvalidCredentialsError

	_, err = svc.AuthenticateUser("ada@example.com", "wrong")
	require.ErrorAs(t, err, &credErr)

	_, err = svc.AuthenticateUser("nobody@example.com", "hunter22")
	require.ErrorAs(t, err, &credErr)
}

func TestRevokeAuthToken(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	reg, err := svc.RegisterUser("Ada", "ada@example.com", "hunter22")
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAuthToken(reg.ID))
	assert.Empty(t, repo.users[reg.ID].TokenHash)
}
