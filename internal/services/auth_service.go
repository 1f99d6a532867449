package services

import (
	"context"
	"errors"
	"strings"

	"github.com/medxhealth/medx/internal/auth"
	"github.com/medxhealth/medx/internal/models"
	mongorepo "github.com/medxhealth/medx/internal/repositories/mongo"
	"github.com/medxhealth/medx/internal/utils"
)

type RegisterInput struct {
	HospitalName      string `json:"hospital_name"`
	ContactPersonName string `json:"contact_person_name"`
	Email             string `json:"email"`
	Password          string `json:"password"`
	Address           string `json:"address"`
	Phone             string `json:"phone"`
	Website           string `json:"website"`
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) error
	Login(ctx context.Context, email, password string) (token string, user *models.User, err error)
}

type authService struct {
	users     mongorepo.UserRepository
	hospitals mongorepo.HospitalRepository
	tokens    *auth.TokenManager
}

func NewAuthService(users mongorepo.UserRepository, hospitals mongorepo.HospitalRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, hospitals: hospitals, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, in RegisterInput) error {
	const op = "AuthService.Register"

	if err := validateRegister(&in); err != nil {
		return utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return utils.E(utils.CodeInvalidArgument, op, "email already registered", nil)
	} else if !errors.Is(err, utils.ErrNotFound) {
		return utils.E(utils.CodeInternal, op, "failed to check existing account", err)
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	user := &models.User{
		Name:         in.ContactPersonName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         models.RoleHospital,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to create account", err)
	}

	hospital := &models.Hospital{
		Name:            in.HospitalName,
		Email:           in.Email,
		Address:         in.Address,
		Phone:           in.Phone,
		Website:         in.Website,
		CreatedByUserID: user.ID,
		Verified:        false,
	}
	if err := s.hospitals.Insert(ctx, hospital); err != nil {
		// best-effort compensation so the email can be registered again;
		// a crash between the two inserts still leaves an orphaned account
		_ = s.users.Delete(ctx, user.ID)
		return utils.E(utils.CodeInternal, op, "failed to create hospital", err)
	}
	return nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "AuthService.Login"

	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, utils.E(utils.CodeInvalidArgument, op, "email and password are required", nil)
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
		}
		return "", nil, utils.E(utils.CodeInternal, op, "failed to look up account", err)
	}

	if utils.CheckPassword(user.PasswordHash, password) != nil {
		return "", nil, utils.E(utils.CodeUnauthorized, op, "invalid credentials", nil)
	}

	hospitalID := ""
	if user.Role == models.RoleHospital {
		if h, err := s.hospitals.FindByCreator(ctx, user.ID); err == nil {
			hospitalID = h.ID.Hex()
		}
	}

	token, err := s.tokens.Issue(user.ID.Hex(), user.Email, user.Role, hospitalID)
	if err != nil {
		return "", nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return token, user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegister(in *RegisterInput) error {
	in.HospitalName = strings.TrimSpace(in.HospitalName)
	in.ContactPersonName = strings.TrimSpace(in.ContactPersonName)
	in.Email = normalizeEmail(in.Email)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Website = strings.TrimSpace(in.Website)

	switch {
	case len(in.HospitalName) < 2:
		return errors.New("hospital name must be at least 2 characters")
	case len(in.ContactPersonName) < 2:
		return errors.New("contact person name must be at least 2 characters")
	case !utils.ValidEmail(in.Email):
		return errors.New("invalid email address")
	case len(in.Password) < 8:
		return errors.New("password must be at least 8 characters")
	case len(in.Address) < 5:
		return errors.New("address must be at least 5 characters")
	case len(in.Phone) < 10:
		return errors.New("phone must be at least 10 characters")
	case in.Website != "" && !utils.ValidURL(in.Website):
		return errors.New("website must be a valid URL")
	}
	return nil
}
