package store

import (
	"errors"

	"hunthub/internal/models"

	"gorm.io/gorm"
)

// GormUsers is the Postgres-backed UserRepository.
type GormUsers struct {
	db *gorm.DB
}

func NewGormUsers(db *gorm.DB) *GormUsers {
	return &GormUsers{db: db}
}

func (r *GormUsers) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormUsers) ByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *GormUsers) ByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// GormProducts is the Postgres-backed ProductRepository.
type GormProducts struct {
	db *gorm.DB
}

func NewGormProducts(db *gorm.DB) *GormProducts {
	return &GormProducts{db: db}
}

func (r *GormProducts) Create(product *models.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormProducts) ByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Hunter").First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (r *GormProducts) Page(offset, limit int) ([]models.Product, error) {
	var products []models.Product
	err := r.db.Preload("Hunter").
		Order("votes_total DESC, pub_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, translate(err)
	}
	return products, nil
}

func (r *GormProducts) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return 0, translate(err)
	}
	return total, nil
}

// GormVotes is the Postgres-backed VoteRepository.
type GormVotes struct {
	db *gorm.DB
}

func NewGormVotes(db *gorm.DB) *GormVotes {
	return &GormVotes{db: db}
}

// Record relies on the idx_votes_user_product unique index: a duplicate pair
// fails the insert inside the transaction, so the counter increment rolls
// back with it and votes_total never drifts from the vote rows.
func (r *GormVotes) Record(userID, productID uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		vote := models.Vote{UserID: userID, ProductID: productID}
		if err := tx.Create(&vote).Error; err != nil {
			return err
		}
		return tx.Model(&models.Product{}).
			Where("id = ?", productID).
			UpdateColumn("votes_total", gorm.Expr("votes_total + ?", 1)).Error
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

func (r *GormVotes) Exists(userID, productID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Vote{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

// translate maps GORM errors to the store's sentinel errors. Requires the
// connection to be opened with TranslateError so unique-index violations
// surface as gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	default:
		return err
	}
}
