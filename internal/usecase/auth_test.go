//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"frontdesk/internal/domain/staff"
	"frontdesk/internal/pkg/jwt"
	"frontdesk/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthUseCase(t *testing.T) usecase.AuthUseCase {
	t.Helper()
	directory, err := staff.NewDirectory(map[staff.Role]string{
		staff.RoleAdmin:        "AD01",
		staff.RoleHotelService: "SERV01",
		staff.RoleRoomSupport:  "SERV02",
	})
	require.NoError(t, err)
	return usecase.NewAuthUseCase(directory, jwt.NewService("test-secret", time.Hour))
}

func TestLogin(t *testing.T) {
	auth := newAuthUseCase(t)

	t.Run("each password resolves to its role", func(t *testing.T) {
		cases := []struct {
			password string
			want     staff.Role
		}{
			{password: "AD01", want: staff.RoleAdmin},
			{password: "SERV01", want: staff.RoleHotelService},
			{password: "SERV02", want: staff.RoleRoomSupport},
		}
		for _, c := range cases {
			token, role, err := auth.Login(c.password)
			require.NoError(t, err)
			assert.Equal(t, c.want, role)
			assert.NotEmpty(t, token)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := auth.Login("wrong")
		require.ErrorIs(t, err, usecase.ErrInvalidPassword)
	})
}

func TestValidateToken(t *testing.T) {
	auth := newAuthUseCase(t)

	t.Run("round trip keeps the role", func(t *testing.T) {
		token, _, err := auth.Login("SERV01")
		require.NoError(t, err)

		role, err := auth.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, staff.RoleHotelService, role)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := auth.ValidateToken("not-a-token")
		require.ErrorIs(t, err, usecase.ErrTokenValidation)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := jwt.NewService("other-secret", time.Hour).GenerateToken(staff.RoleAdmin)
		require.NoError(t, err)

		_, err = auth.ValidateToken(other)
		require.ErrorIs(t, err, usecase.ErrTokenValidation)
	})
}
