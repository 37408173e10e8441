package db_models

import "gorm.io/datatypes"

// KVBlob is one key-value entry of the plan blob store.
type KVBlob struct {
	Key       string         `gorm:"primaryKey;size:128"`
	Value     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt int64          `gorm:"autoUpdateTime"`
}

func (KVBlob) TableName() string { return "kv_blobs" }
