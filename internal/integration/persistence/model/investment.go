// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/mos3c/budget-guy/internal/domain/entity"
)

// InvestmentModel represents the investments table in the database.
type InvestmentModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name           string           `gorm:"type:varchar(100);not null"`
	Type           string           `gorm:"type:varchar(20);not null;index"`
	OthersDetail   string           `gorm:"type:varchar(255)"`
	AmountInvested decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	CurrentValue   decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Quantity       *decimal.Decimal `gorm:"type:decimal(20,8)"`
	PurchaseDate   time.Time        `gorm:"type:date;not null;index"`
	CreatedAt      time.Time        `gorm:"not null"`
	UpdatedAt      time.Time        `gorm:"not null"`
	DeletedAt      gorm.DeletedAt   `gorm:"index"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the InvestmentModel.
func (InvestmentModel) TableName() string {
	return "investments"
}

// ToEntity converts an InvestmentModel to a domain Investment entity.
func (m *InvestmentModel) ToEntity() *entity.Investment {
	return &entity.Investment{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Type:           entity.InvestmentType(m.Type),
		OthersDetail:   m.OthersDetail,
		AmountInvested: m.AmountInvested,
		CurrentValue:   m.CurrentValue,
		Quantity:       m.Quantity,
		PurchaseDate:   m.PurchaseDate,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// InvestmentFromEntity creates an InvestmentModel from a domain Investment entity.
func InvestmentFromEntity(investment *entity.Investment) *InvestmentModel {
	return &InvestmentModel{
		ID:             investment.ID,
		UserID:         investment.UserID,
		Name:           investment.Name,
		Type:           string(investment.Type),
		OthersDetail:   investment.OthersDetail,
		AmountInvested: investment.AmountInvested,
		CurrentValue:   investment.CurrentValue,
		Quantity:       investment.Quantity,
		PurchaseDate:   investment.PurchaseDate,
		CreatedAt:      investment.CreatedAt,
		UpdatedAt:      investment.UpdatedAt,
	}
}
