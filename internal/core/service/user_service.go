package service

import (
	"github.com/rs/zerolog"

	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

// UserService hashes plaintext passwords before they reach the users table.
type UserService = EntityService[domain.User, domain.UserInput, domain.UserPatch]

func NewUserService(
	gw ports.Gateway[domain.User, domain.UserInput, domain.UserPatch],
	hasher ports.PasswordHasher,
	log zerolog.Logger,
) *UserService {
	s := NewEntityService("user", gw, log)
	s.beforeCreate = func(in *domain.UserInput) error {
		hash, err := hasher.Hash(in.Password)
		if err != nil {
			return err
		}
		in.PasswordHash = hash
		in.Password = ""
		return nil
	}
	s.beforeUpdate = func(in *domain.UserPatch) error {
		if in.Password == nil {
			return nil
		}
		hash, err := hasher.Hash(*in.Password)
		if err != nil {
			return err
		}
		in.PasswordHash = &hash
		in.Password = nil
		return nil
	}
	return s
}
