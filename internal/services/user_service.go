package services

import (
	"fmt"
	"time"

	"messmet_backend/internal/auth"
	"messmet_backend/internal/dto"
	"messmet_backend/internal/logger"
	"messmet_backend/internal/models"
	"messmet_backend/internal/repositories"
	"messmet_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserService struct {
	userRepo         *repositories.UserRepository
	attendanceRepo   *repositories.AttendanceRepository
	subscriptionRepo *repositories.SubscriptionRepository
	paymentRepo      *repositories.PaymentRepository
}

func NewUserService(
	userRepo *repositories.UserRepository,
	attendanceRepo *repositories.AttendanceRepository,
	subscriptionRepo *repositories.SubscriptionRepository,
	paymentRepo *repositories.PaymentRepository,
) *UserService {
	return &UserService{
		userRepo:         userRepo,
		attendanceRepo:   attendanceRepo,
		subscriptionRepo: subscriptionRepo,
		paymentRepo:      paymentRepo,
	}
}

// --- Профиль ---

func (s *UserService) GetProfile(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailExists(db, *req.Email, user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.MobileNo != nil {
		user.MobileNo = *req.MobileNo
	}
	if req.HostelStatus != nil {
		user.HostelStatus = models.HostelStatus(*req.HostelStatus)
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// UpdateProfileImage сохраняет путь уже загруженного файла.
func (s *UserService) UpdateProfileImage(db *gorm.DB, userID, imagePath string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	user.ProfileImage = imagePath
	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// --- Управление пользователями (персонал) ---

func (s *UserService) ListUsers(db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error) {
	rows, total, err := s.userRepo.FindAllWithAttendanceCount(db, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]dto.UserListItem, 0, len(rows))
	for i := range rows {
		items = append(items, dto.UserListItem{
			UserResponse:    dto.ToUserResponse(&rows[i].User),
			AttendanceCount: rows[i].AttendanceCount,
		})
	}

	return &dto.UserListResponse{
		Items:      items,
		Pagination: dto.Pagination{Page: page, PageSize: pageSize, Total: total},
	}, nil
}

// GetUserDetails — карточка: посещения за 30 дней, активные подписки,
// чеки в ожидании.
func (s *UserService) GetUserDetails(db *gorm.DB, userID string) (*dto.UserDetailsResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	since := time.Now().AddDate(0, 0, -30)
	attendance, err := s.attendanceRepo.FindByUserSince(db, userID, since)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	subs, err := s.subscriptionRepo.FindActiveListByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	proofs, err := s.paymentRepo.FindProofsByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	details := &dto.UserDetailsResponse{
		User:                dto.ToUserResponse(user),
		RecentAttendance:    make([]dto.AttendanceItem, 0, len(attendance)),
		ActiveSubscriptions: make([]dto.SubscriptionItem, 0, len(subs)),
		PendingProofs:       make([]dto.PaymentProofResponse, 0),
	}
	for i := range attendance {
		details.RecentAttendance = append(details.RecentAttendance, dto.ToAttendanceItem(&attendance[i]))
	}
	for i := range subs {
		details.ActiveSubscriptions = append(details.ActiveSubscriptions, dto.ToSubscriptionItem(&subs[i]))
	}
	for i := range proofs {
		if proofs[i].Status == models.ProofStatusPending {
			details.PendingProofs = append(details.PendingProofs, dto.ToPaymentProofResponse(&proofs[i]))
		}
	}

	return details, nil
}

func (s *UserService) CreateUser(db *gorm.DB, req *dto.AdminCreateUserRequest) (*dto.UserResponse, error) {
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

	role := models.UserRoleStudent
	if req.Role != "" {
		role = models.UserRole(req.Role)
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
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *UserService) UpdateUser(db *gorm.DB, userID string, req *dto.AdminUpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Email != nil && *req.Email != user.Email {
		taken, err := s.userRepo.EmailExists(db, *req.Email, user.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.MobileNo != nil {
		user.MobileNo = *req.MobileNo
	}
	if req.HostelStatus != nil {
		user.HostelStatus = models.HostelStatus(*req.HostelStatus)
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		user.PasswordHash = hash
	}

	if err := s.userRepo.Update(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

// DeleteUser — администратора (superuser) и самого себя удалить нельзя.
func (s *UserService) DeleteUser(db *gorm.DB, userID, actorID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if user.IsSuperuser() {
		return apperrors.ErrCannotDeleteSuperuser
	}
	if user.ID == actorID {
		return apperrors.ErrCannotDeleteSelf
	}

	if err := s.userRepo.Delete(db, userID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted", "user_id", userID, "actor_id", actorID)
	return nil
}

// --- Экспорт ---

// UserCSVHeader — порядок колонок фиксирован.
var UserCSVHeader = []string{
	"ID", "Username", "Email", "Full Name", "Mobile Number",
	"Is Active", "Is Staff", "Date Joined", "Last Login",
	"Total Attendance", "Last Attendance Date", "Active Subscriptions",
}

// ExportUsersCSV собирает строки выгрузки пользователей.
func (s *UserService) ExportUsersCSV(db *gorm.DB) ([][]string, error) {
	rows, err := s.userRepo.FindAllForExport(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, UserCSVHeader)
	for i := range rows {
		u := &rows[i]
		records = append(records, []string{
			u.ID,
			u.Username,
			orDefault(u.Email, "Not provided"),
			orDefault(u.FullName, "Not provided"),
			orDefault(u.MobileNo, "Not provided"),
			yesNo(u.IsActive),
			yesNo(u.IsStaff()),
			u.CreatedAt.Format("2006-01-02 15:04:05"),
			formatNullableTime(u.LastLoginAt, "2006-01-02 15:04:05", "Never"),
			fmt.Sprintf("%d", u.TotalAttendance),
			formatNullableTime(u.LastAttendanceDate, "2006-01-02", "Never"),
			fmt.Sprintf("%d", u.ActiveSubs),
		})
	}
	return records, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func formatNullableTime(t *time.Time, layout, def string) string {
	if t == nil {
		return def
	}
	return t.Format(layout)
}
