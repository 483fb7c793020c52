package service

import (
	"errors"

	"github.com/rs/zerolog/log"

	"minimart/internal/apperr"
	"minimart/internal/dto"
	"minimart/internal/model"
	"minimart/internal/repository"
)

// AuthService defines the contract for credential management. Passwords are
// compared in plain text; the credential file is not a security boundary.
type AuthService interface {
	Login(req dto.LoginRequest) (model.Credential, error)
	Signup(req dto.SignupRequest) (model.Credential, error)
	UpdateAccount(id string, req dto.UpdateAccountRequest) (model.Credential, error)
}

type authService struct {
	creds repository.CredentialRepository
}

func NewAuthService(creds repository.CredentialRepository) AuthService {
	return &authService{creds: creds}
}

func (s *authService) Login(req dto.LoginRequest) (model.Credential, error) {
	if err := checkAs(req, apperr.ErrInvalidCredential); err != nil {
		return model.Credential{}, err
	}

	cred, err := s.creds.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return model.Credential{}, apperr.ErrAuthFailure
		}
		return model.Credential{}, err
	}
	if cred.Password != req.Password {
		return model.Credential{}, apperr.ErrAuthFailure
	}

	log.Info().Str("user", cred.Username).Msg("login")
	return cred, nil
}

func (s *authService) Signup(req dto.SignupRequest) (model.Credential, error) {
	if err := checkAs(req, apperr.ErrInvalidCredential); err != nil {
		return model.Credential{}, err
	}

	// Reject duplicates up front; the lookup itself keeps last-match-wins
	// semantics for legacy files that already contain them.
	if _, err := s.creds.FindByUsername(req.Username); err == nil {
		return model.Credential{}, apperr.ErrUsernameTaken
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return model.Credential{}, err
	}

	cred, err := s.creds.Append(req.Username, req.Password)
	if err != nil {
		return model.Credential{}, err
	}

	log.Info().Str("user", cred.Username).Str("id", cred.ID).Msg("signup")
	return cred, nil
}

func (s *authService) UpdateAccount(id string, req dto.UpdateAccountRequest) (model.Credential, error) {
	if err := checkAs(req, apperr.ErrInvalidCredential); err != nil {
		return model.Credential{}, err
	}

	if err := s.creds.UpdateByID(id, req.Username, req.Password); err != nil {
		return model.Credential{}, err
	}

	log.Info().Str("id", id).Msg("account updated")
	return model.Credential{ID: id, Username: req.Username, Password: req.Password}, nil
}
