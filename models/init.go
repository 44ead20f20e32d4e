package models

import (
	"log"

	"clubserver/config"
	"clubserver/storage"

	"gorm.io/gorm"
)

func Init(db *gorm.DB) {
	if err := db.AutoMigrate(
		&User{},
		&Grant{},
		&GalleryImage{},
		&Album{},
		&Event{},
		&EventLike{},
		&EventComment{},
		&Competition{},
		&Document{},
		&Result{},
		&ResultItem{},
		&Message{},
		&JokerDraw{},
		&JokerDrawHistory{},
	); err != nil {
		panic(err)
	}
	seedAdmin(db)
}

// seedAdmin creates the initial administrator on an empty install.
func seedAdmin(db *gorm.DB) {
	if config.ADMIN_EMAIL == "" || config.ADMIN_PASSWORD == "" {
		return
	}
	var count int64
	db.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}
	admin, err := UserCreate(db, "Admin", config.ADMIN_EMAIL, config.ADMIN_PASSWORD)
	if err != nil {
		log.Printf("could not create initial admin: %v", err)
		return
	}
	if err = admin.Grant(db, admin.ID, PermissionAdmin); err != nil {
		log.Printf("could not grant admin permission: %v", err)
	}
	log.Printf("Initial admin account created: %s", admin.Email)
}

// InitStorage creates the default disk bucket on first start, if configured.
func InitStorage(db *gorm.DB) {
	if err := db.AutoMigrate(&storage.Bucket{}); err != nil {
		panic(err)
	}
	var count int64
	db.Model(&storage.Bucket{}).Count(&count)
	if count == 0 && config.DEFAULT_BUCKET_DIR != "" {
		bucket := storage.Bucket{
			Name:        "default",
			StorageType: storage.StorageTypeFile,
			Path:        config.DEFAULT_BUCKET_DIR,
		}
		if err := bucket.Create(db); err != nil {
			panic(err)
		}
	}
	storage.Init(db)
}
