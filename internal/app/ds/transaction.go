package ds

import "time"

// Transaction is a single ledger entry. Jumlah is in whole rupiah.
type Transaction struct {
	ID            uint      `gorm:"primaryKey"`
	Jenis         string    `gorm:"type:varchar(20);not null"` // pemasukan, pengeluaran
	Kategori      string    `gorm:"type:varchar(50);not null"`
	Jumlah        int64     `gorm:"not null"`
	Tanggal       time.Time `gorm:"not null;index"`
	Keterangan    string    `gorm:"type:text"`
	ReceiptObject *string   `gorm:"type:varchar(255)"` // object name in storage, nullable
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
