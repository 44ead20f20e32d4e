package handlers

import (
	"net/http"

	"clubserver/db"
	"clubserver/models"
	"clubserver/storage"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type BucketInfo struct {
	storage.Bucket
	TotalSpace uint64 `json:"total_space"`
	FreeSpace  uint64 `json:"free_space"`
}

type BucketSaveRequest struct {
	Name        string `form:"name" binding:"required"`
	StorageType uint8  `form:"storage_type"`
	Path        string `form:"path" binding:"required"`
	AuthDetails string `form:"auth_details"`
	Region      string `form:"region"`
	Endpoint    string `form:"endpoint"`
}

func BucketList(c *gin.Context, user *models.User) {
	var buckets []storage.Bucket
	if err := db.Instance.Find(&buckets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, Response{"database error"})
		return
	}
	result := []BucketInfo{}
	for _, bucket := range buckets {
		info := BucketInfo{Bucket: bucket}
		if api := storage.StorageFrom(&bucket); api != nil {
			info.TotalSpace = api.GetTotalSpace()
			info.FreeSpace = api.GetFreeSpace()
		}
		result = append(result, info)
	}
	c.JSON(http.StatusOK, result)
}

func BucketSave(c *gin.Context, user *models.User) {
	r := BucketSaveRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, Response{err.Error()})
		return
	}
	bucket := storage.Bucket{
		Name:        r.Name,
		StorageType: storage.StorageType(r.StorageType),
		Path:        r.Path,
		AuthDetails: r.AuthDetails,
		Region:      r.Region,
		Endpoint:    r.Endpoint,
	}
	if err := bucket.Create(db.Instance); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	if _, err := storage.Register(&bucket); err != nil {
		c.JSON(http.StatusInternalServerError, Response{err.Error()})
		return
	}
	c.JSON(http.StatusOK, bucket)
}
