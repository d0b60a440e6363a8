// Package userrepo persists login identities with GORM.
package userrepo

import (
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO is the database row for a login identity.
// Exactly one of ClientID/EmployeeID is set, matching Role.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	PasswordHash string
	Role         int
	ClientID     *uuid.UUID `gorm:"type:uuid;index"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *account.User) UserDTO {
	var clientID, employeeID *uuid.UUID
	if id := u.ClientID(); id != nil {
		raw := id.Bytes()
		clientID = &raw
	}
	if id := u.EmployeeID(); id != nil {
		raw := id.Bytes()
		employeeID = &raw
	}

	return UserDTO{
		ID:           u.ID().Bytes(),
		Username:     u.Username(),
		PasswordHash: u.PasswordHash(),
		Role:         int(u.Role()),
		ClientID:     clientID,
		EmployeeID:   employeeID,
	}
}

func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var clientID, employeeID *kernel.UUID
	if dto.ClientID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.ClientID)[:])
		if cErr != nil {
			return nil, cErr
		}
		clientID = &cID
	}
	if dto.EmployeeID != nil {
		eID, eErr := kernel.UUIDFromBytes((*dto.EmployeeID)[:])
		if eErr != nil {
			return nil, eErr
		}
		employeeID = &eID
	}

	return account.NewUser(id, dto.Username, dto.PasswordHash, account.Role(dto.Role), clientID, employeeID)
}
