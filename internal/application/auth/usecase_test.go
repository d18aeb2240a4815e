package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/AgriCore-api/internal/application/auth"
	"github.com/jhoicas/AgriCore-api/internal/application/dto"
	"github.com/jhoicas/AgriCore-api/internal/domain"
	"github.com/jhoicas/AgriCore-api/internal/domain/entity"
)

// fakeUserRepo implementa repository.UserRepository en memoria, con un
// error inyectable en la búsqueda por username.
type fakeUserRepo struct {
	users   map[string]*entity.User // clave: username
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdatePassword(id, passwordHash string) error {
	for _, u := range r.users {
		if u.ID == id {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newAuthUseCase(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		ExpMinutes: 60,
		Issuer:     "agricore-test",
	})
}

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		Username: "agricultor1",
		Email:    "agricultor1@example.com",
		FullName: "Agricultor Uno",
		Password: "contraseña-larga",
	}
}

// Registro y login de ida y vuelta: el hash nunca viaja en la respuesta.
func TestRegisterUser_YLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	user, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)
	assert.Equal(t, "agricultor1", user.Username)

	res, err := uc.Login(dto.LoginRequest{Username: "agricultor1", Password: "contraseña-larga"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, user.ID, res.User.ID)
}

// Username ya registrado → conflicto.
func TestRegisterUser_UsernameOcupado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	_, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	_, err = uc.RegisterUser(registerRequest())
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

// Un fallo de la BD al buscar el username debe propagarse, nunca tratarse
// como "username libre" y seguir con la creación.
func TestRegisterUser_FalloDeBusqueda_Propaga(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("conexión perdida")
	uc := newAuthUseCase(repo)

	_, err := uc.RegisterUser(registerRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUsernameTaken)
	assert.Empty(t, repo.users, "no debe crearse ningún usuario si la búsqueda falló")
}

// Contraseña equivocada → Unauthorized; usuario inexistente → UserNotFound.
func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	_, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "agricultor1", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Cambio de contraseña: exige la anterior correcta.
func TestUpdatePassword(t *testing.T) {
	repo := newFakeUserRepo()
	uc := newAuthUseCase(repo)

	user, err := uc.RegisterUser(registerRequest())
	require.NoError(t, err)

	err = uc.UpdatePassword(user.ID, dto.UpdatePasswordRequest{
		OldPassword: "equivocada", NewPassword: "otra-contraseña",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	err = uc.UpdatePassword(user.ID, dto.UpdatePasswordRequest{
		OldPassword: "contraseña-larga", NewPassword: "otra-contraseña",
	})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "agricultor1", Password: "otra-contraseña"})
	assert.NoError(t, err, "la nueva contraseña debe quedar activa")
}
