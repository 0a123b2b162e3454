package ds

import "time"

// Worker is a freelance worker available for mitra orders.
type Worker struct {
	ID        uint   `gorm:"primaryKey"`
	Nama      string `gorm:"type:varchar(100);not null"`
	Telepon   string `gorm:"type:varchar(30)"`
	Keahlian  string `gorm:"type:varchar(100)"`
	Status    string `gorm:"type:varchar(20);default:'aktif'"` // aktif, nonaktif
	CreatedAt time.Time
	UpdatedAt time.Time
}
