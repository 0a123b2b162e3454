package repository

import (
	"agensi-backend/internal/app/ds"
)

// Transaction (financial ledger) methods.

func (r *Repository) GetTransactions(query string) ([]ds.Transaction, error) {
	var items []ds.Transaction
	q := r.db.Model(&ds.Transaction{})
	if query != "" {
		q = q.Where("kategori ILIKE ? OR keterangan ILIKE ?", "%"+query+"%", "%"+query+"%")
	}
	err := q.Order("tanggal desc, id desc").Find(&items).Error
	return items, err
}

func (r *Repository) GetTransactionByID(id uint) (*ds.Transaction, error) {
	var item ds.Transaction
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) CreateTransaction(item *ds.Transaction) error {
	return r.db.Create(item).Error
}

func (r *Repository) UpdateTransaction(item *ds.Transaction) error {
	return r.db.Save(item).Error
}

func (r *Repository) DeleteTransaction(id uint) error {
	return r.db.Delete(&ds.Transaction{}, id).Error
}

// SetTransactionReceipt stores the object name of the uploaded receipt.
func (r *Repository) SetTransactionReceipt(id uint, objectName string) error {
	return r.db.Model(&ds.Transaction{}).Where("id = ?", id).
		Update("receipt_object", objectName).Error
}

// MonthlyTotal is one point of the report line chart.
type MonthlyTotal struct {
	Month       string `json:"month"`
	Pemasukan   int64  `json:"pemasukan"`
	Pengeluaran int64  `json:"pengeluaran"`
}

// GetMonthlyTotals aggregates transactions per month for one year.
func (r *Repository) GetMonthlyTotals(year int) ([]MonthlyTotal, error) {
	var results []MonthlyTotal
	err := r.db.Model(&ds.Transaction{}).
		Select(`to_char(tanggal, 'YYYY-MM') as month,
			coalesce(sum(jumlah) filter (where jenis = 'pemasukan'), 0) as pemasukan,
			coalesce(sum(jumlah) filter (where jenis = 'pengeluaran'), 0) as pengeluaran`).
		Where("extract(year from tanggal) = ?", year).
		Group("month").
		Order("month asc").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []MonthlyTotal{}
	}
	return results, nil
}
