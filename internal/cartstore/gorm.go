package cartstore

import (
	"gorm.io/gorm"

	"github.com/example/quim/internal/models"
)

// GormStore persists snapshots to the cart_snapshots table, keyed by a
// fixed storage name plus the session id.
type GormStore struct {
	db          *gorm.DB
	storageName string
}

func NewGormStore(db *gorm.DB, storageName string) *GormStore {
	return &GormStore{db: db, storageName: storageName}
}

func (s *GormStore) Save(sessionID string, payload []byte) error {
	var snapshot models.CartSnapshot
	err := s.db.First(&snapshot, "storage_name = ? AND session_id = ?", s.storageName, sessionID).Error
	if err == gorm.ErrRecordNotFound {
		snapshot = models.CartSnapshot{
			StorageName: s.storageName,
			SessionID:   sessionID,
			Payload:     string(payload),
		}
		return s.db.Create(&snapshot).Error
	}
	if err != nil {
		return err
	}
	return s.db.Model(&snapshot).Update("payload", string(payload)).Error
}

func (s *GormStore) Load(sessionID string) ([]byte, bool, error) {
	var snapshot models.CartSnapshot
	err := s.db.First(&snapshot, "storage_name = ? AND session_id = ?", s.storageName, sessionID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(snapshot.Payload), true, nil
}

func (s *GormStore) Delete(sessionID string) error {
	return s.db.Delete(&models.CartSnapshot{}, "storage_name = ? AND session_id = ?", s.storageName, sessionID).Error
}
