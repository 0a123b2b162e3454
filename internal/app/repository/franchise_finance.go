package repository

import (
	"agensi-backend/internal/app/ds"
)

// Franchise-finance methods. The derived split columns are written here as
// computed by the handler; reads return rows as stored and the handler
// recomputes the splits before serving them.

func (r *Repository) GetFranchiseFinances(franchiseID uint) ([]ds.FranchiseFinance, error) {
	var items []ds.FranchiseFinance
	q := r.db.Model(&ds.FranchiseFinance{}).Preload("Franchise")
	if franchiseID != 0 {
		q = q.Where("franchise_id = ?", franchiseID)
	}
	err := q.Order("tanggal desc, id desc").Find(&items).Error
	return items, err
}

func (r *Repository) GetFranchiseFinanceByID(id uint) (*ds.FranchiseFinance, error) {
	var item ds.FranchiseFinance
	err := r.db.Preload("Franchise").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) CreateFranchiseFinance(item *ds.FranchiseFinance) error {
	return r.db.Create(item).Error
}

func (r *Repository) UpdateFranchiseFinance(item *ds.FranchiseFinance) error {
	return r.db.Save(item).Error
}

func (r *Repository) DeleteFranchiseFinance(id uint) error {
	return r.db.Delete(&ds.FranchiseFinance{}, id).Error
}
