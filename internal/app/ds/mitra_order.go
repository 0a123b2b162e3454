package ds

import "time"

// MitraOrder is a unit of freelance work. Kekurangan and FeeFreelance are
// computed from the payment amounts on every write and persisted; reads
// serve the stored values as-is.
type MitraOrder struct {
	ID              uint      `gorm:"primaryKey"`
	NamaCustomer    string    `gorm:"type:varchar(100);not null"`
	Layanan         string    `gorm:"type:varchar(100)"`
	WorkerID        *uint     `gorm:"index"`
	TotalDp         int64     `gorm:"not null;default:0"`
	TotalPembayaran int64     `gorm:"not null"`
	Kekurangan      int64     `gorm:"not null"`
	FeeFreelance    int64     `gorm:"not null"`
	Status          string    `gorm:"type:varchar(20);default:'proses'"` // proses, selesai, batal
	Tanggal         time.Time `gorm:"not null;index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Worker *Worker `gorm:"foreignKey:WorkerID"`
}
