package ds

import "time"

// FranchiseFinance records one customer payment received through a franchise
// and its derived splits. The derived columns are stored for reporting but
// are recomputed from TotalPaymentCust every time a record is served; the
// stored values are never trusted on read.
type FranchiseFinance struct {
	ID               uint      `gorm:"primaryKey"`
	FranchiseID      uint      `gorm:"not null;index"`
	Tanggal          time.Time `gorm:"not null;index"`
	TotalPaymentCust int64     `gorm:"not null"`
	FeeMentor        int64     `gorm:"not null"`
	KomisiMitra      int64     `gorm:"not null"`
	KeuntunganBersih int64     `gorm:"not null"`
	Keterangan       string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Franchise Franchise `gorm:"foreignKey:FranchiseID"`
}
