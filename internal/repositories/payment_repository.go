package repositories

import (
	"errors"

	"messmet_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProofNotFound         = errors.New("payment proof not found")
	ErrPaymentConfigNotFound = errors.New("payment config not found")
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) CreateProof(db *gorm.DB, proof *models.PaymentProof) error {
	return db.Create(proof).Error
}

func (r *PaymentRepository) FindProofByID(db *gorm.DB, id string) (*models.PaymentProof, error) {
	var proof models.PaymentProof
	err := db.Preload("Plan").Preload("User").First(&proof, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProofNotFound
		}
		return nil, err
	}
	return &proof, nil
}

// FindProofsByUser — чеки пользователя, новые первыми.
func (r *PaymentRepository) FindProofsByUser(db *gorm.DB, userID string) ([]models.PaymentProof, error) {
	var proofs []models.PaymentProof
	err := db.Preload("Plan").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&proofs).Error
	return proofs, err
}

// FindProofsByStatus — очередь проверки для персонала. Пустой статус
// возвращает все чеки.
func (r *PaymentRepository) FindProofsByStatus(db *gorm.DB, status models.ProofStatus) ([]models.PaymentProof, error) {
	var proofs []models.PaymentProof
	q := db.Preload("Plan").Preload("User").Order("created_at ASC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&proofs).Error
	return proofs, err
}

func (r *PaymentRepository) UpdateProof(db *gorm.DB, proof *models.PaymentProof) error {
	result := db.Save(proof)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProofNotFound
	}
	return nil
}

func (r *PaymentRepository) CreateVisitorPayment(db *gorm.DB, payment *models.VisitorPayment) error {
	return db.Create(payment).Error
}

// GetPaymentConfig — первая запись реквизитов.
func (r *PaymentRepository) GetPaymentConfig(db *gorm.DB) (*models.PaymentConfig, error) {
	var cfg models.PaymentConfig
	err := db.Order("created_at ASC").First(&cfg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentConfigNotFound
		}
		return nil, err
	}
	return &cfg, nil
}

// SavePaymentConfig создает первую запись или обновляет существующую.
func (r *PaymentRepository) SavePaymentConfig(db *gorm.DB, cfg *models.PaymentConfig) error {
	return db.Save(cfg).Error
}
