package usecase

import (
	"frontdesk/internal/domain/staff"
	"frontdesk/internal/pkg/errs"
	"frontdesk/internal/pkg/jwt"
)

var (
	ErrInvalidPassword = errs.New("invalid password")
	ErrTokenGeneration = errs.New("token generation failed")
	ErrTokenValidation = errs.New("token validation failed")
)

// AuthUseCase is the session guard: a fixed password table resolves to a
// role, and the role travels in a signed token on every subsequent call.
type AuthUseCase interface {
	Login(password string) (string, staff.Role, error)
	ValidateToken(tokenString string) (staff.Role, error)
}

type authUseCaseImpl struct {
	directory  *staff.Directory
	jwtService *jwt.Service
}

func NewAuthUseCase(directory *staff.Directory, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		directory:  directory,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(plain string) (string, staff.Role, error) {
	role, ok := a.directory.Authenticate(plain)
	if !ok {
		return "", "", ErrInvalidPassword
	}

	token, err := a.jwtService.GenerateToken(role)
	if err != nil {
		return "", "", errs.Mark(err, ErrTokenGeneration)
	}
	return token, role, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (staff.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", errs.Mark(err, ErrTokenValidation)
	}

	role, err := staff.NewRole(claims.Role)
	if err != nil {
		return "", errs.Mark(err, ErrTokenValidation)
	}
	return role, nil
}
