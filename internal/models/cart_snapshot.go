package models

// CartSnapshot is a full-state serialization of one session's cart,
// written best-effort after every mutation. The payload is always the
// whole state, never an incremental diff.
type CartSnapshot struct {
	BaseModel
	StorageName string `gorm:"uniqueIndex:idx_cart_snapshots_key" json:"storage_name"`
	SessionID   string `gorm:"uniqueIndex:idx_cart_snapshots_key" json:"session_id"`
	Payload     string `gorm:"type:jsonb" json:"payload"`
}
