package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/portal-empleo/internal/application/auth"
	"github.com/tu-usuario/portal-empleo/internal/application/dto"
	"github.com/tu-usuario/portal-empleo/internal/domain"
	"github.com/tu-usuario/portal-empleo/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/portal-empleo/pkg/jwt"
	"github.com/tu-usuario/portal-empleo/pkg/validation"
)

// fakeUserRepo implementación en memoria del puerto UserRepository.
type fakeUserRepo struct {
	users map[string]*entity.User // por username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Create(user *entity.User) error {
	if _, ok := f.users[user.Username]; ok {
		return domain.ErrDuplicate // emula la constraint única de la tabla
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return domain.ErrDuplicate
		}
	}
	cp := *user
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

var testJWTCfg = auth.JWTConfig{
	Secret:     "secret-solo-para-tests",
	ExpMinutes: 30,
	Issuer:     "portal-empleo-test",
}

func validSignup() dto.SignupRequest {
	return dto.SignupRequest{
		Username: "alice_99",
		Email:    "alice@ejemplo.com",
		Role:     "employee",
		Password: "Passw0rd!",
	}
}

func TestSignup_CreaUsuarioConHash(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	out, err := uc.Signup(validSignup())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "alice_99", out.Username)
	assert.Equal(t, "employee", out.Role)

	stored, err := repo.GetByUsername("alice_99")
	require.NoError(t, err)
	require.NotNil(t, stored, "debe quedar exactamente un usuario persistido")

	// La credencial guardada nunca es el password plano y verifica con bcrypt.
	assert.NotEqual(t, "Passw0rd!", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Passw0rd!")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("otroPassword1!")))
}

func TestSignup_FormatoInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	in := validSignup()
	in.Email = "sin-arroba"
	_, err := uc.Signup(in)

	var vErr *validation.Error
	require.ErrorAs(t, err, &vErr, "el fallo de formato debe ser un validation.Error")
	assert.Equal(t, "email", vErr.Field)
}

func TestSignup_RolDesconocido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)

	in := validSignup()
	in.Role = "superadmin"
	_, err := uc.Signup(in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Invariante rol/empresa: employer y point_of_contact exigen empresa, employee la prohíbe.
func TestSignup_InvarianteRolEmpresa(t *testing.T) {
	casos := []struct {
		nombre  string
		role    string
		company string
		wantErr bool
	}{
		{"employer con empresa", "employer", "Acme", false},
		{"employer sin empresa", "employer", "", true},
		{"poc con empresa", "point_of_contact", "Acme", false},
		{"poc sin empresa", "point_of_contact", "", true},
		{"employee sin empresa", "employee", "", false},
		{"employee con empresa", "employee", "Acme", true},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg)
			in := validSignup()
			in.Role = tc.role
			in.Company = tc.company

			out, err := uc.Signup(in)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrRoleCompany)
				assert.Nil(t, out, "una invariante violada no debe persistir nada")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.company, out.Company)
			}
		})
	}
}

func TestSignup_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Signup(validSignup())
	require.NoError(t, err)

	in := validSignup()
	in.Email = "otra@ejemplo.com"
	_, err = uc.Signup(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, repo.users, 1, "debe quedar exactamente una fila para ese username")
}

func TestLogin_EmiteTokenVerificable(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Signup(validSignup())
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Username: "alice_99", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", out.TokenType)

	subject, err := pkgjwt.Parse(testJWTCfg.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice_99", subject, "el subject del token debe ser el username")
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTCfg)

	_, err := uc.Signup(validSignup())
	require.NoError(t, err)

	// Usuario inexistente y password incorrecto responden con el mismo error.
	_, err = uc.Login(dto.LoginRequest{Username: "nadie", Password: "Passw0rd!"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Username: "alice_99", Password: "Incorrecto1!"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
