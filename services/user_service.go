package services

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mouizahmed/ratethatclass-sub000/config"
	"github.com/mouizahmed/ratethatclass-sub000/models"
	"github.com/mouizahmed/ratethatclass-sub000/repositories"
	"github.com/mouizahmed/ratethatclass-sub000/utils"
)

type UserService struct {
	repo *repositories.UserRepository
	cfg  *config.Config
}

func NewUserService(repo *repositories.UserRepository, cfg *config.Config) *UserService {
	return &UserService{repo: repo, cfg: cfg}
}

// AuthResult pairs the stored user with a fresh signed token.
type AuthResult struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func (s *UserService) Register(req models.RegisterRequest) (AuthResult, error) {
	if err := req.Validate(); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, utils.NewInternalError("failed to hash password: %v", err)
	}

	user := models.User{
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		AccountType:  models.AccountUser,
	}
	if err := s.repo.Create(&user); err != nil {
		return AuthResult{}, err
	}

	token, err := utils.GenerateToken(user.UserID, user.Email, string(user.AccountType), true, false, false, s.cfg)
	if err != nil {
		return AuthResult{}, utils.NewInternalError("failed to sign token: %v", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *UserService) Login(req models.LoginRequest) (AuthResult, error) {
	if err := req.Validate(); err != nil {
		return AuthResult{}, err
	}

	user, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return AuthResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return AuthResult{}, utils.NewUnauthorizedError("invalid email or password")
	}

	admin := user.AccountType == models.AccountAdmin
	owner := user.AccountType == models.AccountOwner
	token, err := utils.GenerateToken(user.UserID, user.Email, string(user.AccountType), true, admin, owner, s.cfg)
	if err != nil {
		return AuthResult{}, utils.NewInternalError("failed to sign token: %v", err)
	}
	return AuthResult{User: user, Token: token}, nil
}
