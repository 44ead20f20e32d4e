package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	TLS_DOMAINS        = "" // e.g. "club.example.com"
	MYSQL_DSN          = "" // MySQL will be used if this is set
	SQLITE_FILE        = "" // SQLite will be used if MYSQL_DSN is not configured and this is set
	BIND_ADDRESS       = "0.0.0.0:8080"
	TMP_DIR            = "/tmp" // Local staging area for S3 bucket up/downloads
	DEFAULT_BUCKET_DIR = ""     // Used for creating the initial storage bucket
	DEBUG_MODE         = true
	UPLOAD_MAX_SIZE    = 50 * 1024 * 1024 // bytes; hard limit for gallery/document uploads
	THUMB_SIZE         = 640              // longest side of generated gallery thumbnails
	ADMIN_EMAIL        = ""               // Initial admin account, created on first start
	ADMIN_PASSWORD     = ""
	SESSION_KEY        = "" // Cookie signing key; random per start when unset (sessions won't survive restarts)
)

func init() {
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TMP_DIR", &TMP_DIR)
	readEnvString("DEFAULT_BUCKET_DIR", &DEFAULT_BUCKET_DIR)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvInt("UPLOAD_MAX_SIZE", &UPLOAD_MAX_SIZE)
	readEnvInt("THUMB_SIZE", &THUMB_SIZE)
	readEnvString("ADMIN_EMAIL", &ADMIN_EMAIL)
	readEnvString("ADMIN_PASSWORD", &ADMIN_PASSWORD)
	readEnvString("SESSION_KEY", &SESSION_KEY)
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return
	}
	*value = v
}
