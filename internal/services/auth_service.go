package services

import (
	"messmet_backend/internal/auth"
	"messmet_backend/internal/dto"
	"messmet_backend/internal/logger"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService struct {
	userRepo *repositories.UserRepository
}

func NewAuthService(userRepo *repositories.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

// Register — регистрация студента. Роль всегда student: персонал заводит
// только администратор через админ-панель.
func (s *AuthService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	taken, err := s.userRepo.UsernameExists(db, req.Username, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrUsernameTaken
	}

	taken, err = s.userRepo.EmailExists(db, req.Email, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	hostelStatus := models.HostelStatusNonHosteller
	if req.HostelStatus != "" {
		hostelStatus = models.HostelStatus(req.HostelStatus)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		MobileNo:     req.MobileNo,
		HostelStatus: hostelStatus,
		Role:         models.UserRoleStudent,
		IsActive:     true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID, "username", user.Username)

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// Login — проверка пароля и выдача JWT.
func (s *AuthService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !user.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Неудача здесь не должна ломать вход
	if err := s.userRepo.UpdateLastLogin(db, user.ID); err != nil {
		logger.WithError(err).Warn("failed to update last login", "user_id", user.ID)
	}

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
