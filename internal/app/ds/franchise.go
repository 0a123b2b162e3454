package ds

import "time"

// Franchise is a franchise partner of the agency.
type Franchise struct {
	ID        uint   `gorm:"primaryKey"`
	Nama      string `gorm:"type:varchar(100);not null"`
	Pemilik   string `gorm:"type:varchar(100)"`
	Telepon   string `gorm:"type:varchar(30)"`
	Alamat    string `gorm:"type:text"`
	Status    string `gorm:"type:varchar(20);default:'aktif'"` // aktif, nonaktif
	CreatedAt time.Time
	UpdatedAt time.Time
}
