package account

import (
	"context"
	"errors"
	"time"

	infrarepo "github.com/amirasaad/pinbank/infra/repository"
	domainaccount "github.com/amirasaad/pinbank/pkg/domain/account"
	repo "github.com/amirasaad/pinbank/pkg/repository/account"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed account repository. Account numbers come from
// the table's generated key.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Save implements account.Repository.
func (r *repository) Save(ctx context.Context, acct domainaccount.Account) (domainaccount.Account, error) {
	m := mapDomainToModel(acct)
	m.AccountNumber = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domainaccount.Account{}, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

// FindByNumber implements account.Repository.
func (r *repository) FindByNumber(ctx context.Context, number int64) (domainaccount.Account, error) {
	var m Account
	err := r.db.WithContext(ctx).First(&m, "account_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainaccount.Account{}, domainaccount.ErrAccountNotFound
	}
	if err != nil {
		return domainaccount.Account{}, infrarepo.MapGormErrorToDomain(err)
	}
	return mapModelToDomain(&m), nil
}

// GetAll implements account.Repository. Rows come back in insertion order.
func (r *repository) GetAll(ctx context.Context) ([]domainaccount.Account, error) {
	var models []Account
	if err := r.db.WithContext(ctx).Order("account_number").Find(&models).Error; err != nil {
		return nil, infrarepo.MapGormErrorToDomain(err)
	}
	result := make([]domainaccount.Account, 0, len(models))
	for i := range models {
		result = append(result, mapModelToDomain(&models[i]))
	}
	return result, nil
}

// Update implements account.Repository.
func (r *repository) Update(ctx context.Context, acct domainaccount.Account) (domainaccount.Account, error) {
	return update(r.db.WithContext(ctx), acct)
}

// UpdateMany implements account.Repository. All rows are written in one
// database transaction.
func (r *repository) UpdateMany(
	ctx context.Context,
	accts ...domainaccount.Account,
) ([]domainaccount.Account, error) {
	result := make([]domainaccount.Account, 0, len(accts))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, acct := range accts {
			saved, err := update(tx, acct)
			if err != nil {
				return err
			}
			result = append(result, saved)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func update(db *gorm.DB, acct domainaccount.Account) (domainaccount.Account, error) {
	acct.UpdatedAt = time.Now().UTC()
	res := db.
		Model(&Account{}).
		Where("account_number = ?", acct.Number).
		Updates(map[string]any{
			"owner_name": acct.OwnerName,
			"pin_code":   acct.PinCode,
			"balance":    acct.Balance,
			"updated_at": acct.UpdatedAt,
		})
	if res.Error != nil {
		return domainaccount.Account{}, infrarepo.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainaccount.Account{}, domainaccount.ErrAccountNotFound
	}
	return acct, nil
}

// Delete implements account.Repository.
func (r *repository) Delete(ctx context.Context, number int64) error {
	res := r.db.WithContext(ctx).Where("account_number = ?", number).Delete(&Account{})
	if res.Error != nil {
		return infrarepo.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domainaccount.ErrAccountNotFound
	}
	return nil
}

func mapDomainToModel(acct domainaccount.Account) Account {
	return Account{
		AccountNumber: acct.Number,
		OwnerName:     acct.OwnerName,
		PinCode:       acct.PinCode,
		Balance:       acct.Balance,
		CreatedAt:     acct.CreatedAt,
		UpdatedAt:     acct.UpdatedAt,
	}
}

func mapModelToDomain(m *Account) domainaccount.Account {
	return domainaccount.Account{
		Number:    m.AccountNumber,
		OwnerName: m.OwnerName,
		PinCode:   m.PinCode,
		Balance:   m.Balance,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
