package models

import (
	"clubserver/utils"

	"gorm.io/gorm"
)

type User struct {
	ID          uint64  `gorm:"primaryKey" json:"id"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"-"`
	CreatedByID *uint64 `json:"-"`
	CreatedBy   *User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
	Name        string  `gorm:"type:varchar(100)" json:"name"`
	Email       string  `gorm:"type:varchar(150);index:uniq_email,unique" json:"email"`
	Password    string  `gorm:"type:varchar(128)" json:"-"`
	PassSalt    string  `gorm:"type:varchar(200)" json:"-"`
	AvatarPath  string  `gorm:"type:varchar(300)" json:"avatar_path"`
	Grants      []Grant `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

const saltSize = 60

func UserCreate(db *gorm.DB, name, email, plainTextPassword string) (u User, err error) {
	if name == "" || email == "" || plainTextPassword == "" {
		return u, validationError("name, email and password are required")
	}
	u.Name = name
	u.Email = email
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
	if err = db.Create(&u).Error; err != nil {
		return u, repositoryError(err)
	}
	return u, nil
}

func (u *User) SetPassword(plainTextPassword string) {
	u.PassSalt = utils.RandSalt(saltSize)
	u.Password = utils.Sha512String(plainTextPassword + u.PassSalt)
}

func UserLogin(db *gorm.DB, email, plainTextPassword string) (u User, success bool) {
	result := db.Preload("Grants").First(&u, "email = ?", email)
	if result.Error != nil {
		return User{}, false
	}
	if u.Password != utils.Sha512String(plainTextPassword+u.PassSalt) {
		return User{}, false
	}
	return u, true
}

func (u *User) GetPermissions() []int {
	permissions := []int{}
	for _, grant := range u.Grants {
		permissions = append(permissions, int(grant.Permission))
	}
	return permissions
}

func (u *User) HasPermission(required Permission) bool {
	for _, grant := range u.Grants {
		if grant.Permission == required {
			return true
		}
	}
	return false
}

func (u *User) HasPermissions(required []Permission) bool {
	for _, permission := range required {
		if !u.HasPermission(permission) {
			return false
		}
	}
	return true
}

// IsAdmin reports whether the user holds the administrative grant.
func (u *User) IsAdmin() bool {
	return u.HasPermission(PermissionAdmin)
}

// UserIsAdmin looks up the grant directly, for call sites that only have an ID.
func UserIsAdmin(db *gorm.DB, userID uint64) bool {
	var count int64
	db.Model(&Grant{}).Where("user_id = ? AND permission = ?", userID, PermissionAdmin).Count(&count)
	return count > 0
}

// Grant adds a permission to the user, once.
func (u *User) Grant(db *gorm.DB, grantor uint64, permission Permission) error {
	grant := Grant{
		GrantorID:  grantor,
		UserID:     u.ID,
		Permission: permission,
	}
	result := db.Where("user_id = ? AND permission = ?", u.ID, permission).FirstOrCreate(&grant)
	if result.Error != nil {
		return repositoryError(result.Error)
	}
	return nil
}
