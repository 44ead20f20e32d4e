package storage

import (
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"gorm.io/gorm"
)

type StorageType uint8

const (
	StorageTypeFile StorageType = 0
	StorageTypeS3   StorageType = 1
)

// Well-known path prefixes inside a bucket
const (
	LocationGallery   = "gallery"
	LocationDocuments = "documents"
	LocationContent   = "content" // event/competition/result images
	LocationAvatars   = "avatars"
)

type Bucket struct {
	ID          uint64      `gorm:"primaryKey" json:"id"`
	CreatedAt   int64       `json:"created_at"`
	UpdatedAt   int64       `json:"updated_at"`
	Name        string      `gorm:"type:varchar(200)" json:"name"`
	StorageType StorageType `json:"storage_type"`
	// Path is a directory for disk buckets or a key prefix for S3 buckets
	Path string `json:"path"`
	// AuthDetails is "key:secret" for S3 buckets
	AuthDetails   string `json:"-"`
	Region        string `gorm:"type:varchar(50)" json:"region"`
	Endpoint      string `gorm:"type:varchar(300)" json:"endpoint"`
	SSEEncryption string `gorm:"type:varchar(50)" json:"-"`
}

func (b *Bucket) Create(db *gorm.DB) error {
	if err := db.Create(b).Error; err != nil {
		return err
	}
	if b.StorageType == StorageTypeFile {
		// Pre-create locations on disk
		for _, location := range []string{LocationGallery, LocationDocuments, LocationContent, LocationAvatars} {
			if err := os.MkdirAll(b.Path+"/"+location, 0777); err != nil {
				return err
			}
		}
	}
	return nil
}

// GetRemotePath prepends the bucket's configured prefix, if any.
func (b *Bucket) GetRemotePath(path string) string {
	if b.Path == "" {
		return path
	}
	return strings.TrimSuffix(b.Path, "/") + "/" + path
}

// CreateSVC returns an S3 client for the bucket's credentials and endpoint.
func (b *Bucket) CreateSVC() *s3.S3 {
	auth := strings.SplitN(b.AuthDetails, ":", 2)
	if len(auth) != 2 {
		auth = []string{"", ""}
	}
	awsConfig := aws.Config{
		Credentials: credentials.NewStaticCredentials(auth[0], auth[1], ""),
	}
	if b.Region != "" {
		awsConfig.Region = aws.String(b.Region)
	}
	if b.Endpoint != "" {
		awsConfig.Endpoint = aws.String(b.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}
	return s3.New(session.Must(session.NewSession(&awsConfig)))
}
