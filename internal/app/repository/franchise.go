package repository

import (
	"agensi-backend/internal/app/ds"
)

// Franchise partner methods.

func (r *Repository) GetFranchises(query string) ([]ds.Franchise, error) {
	var items []ds.Franchise
	q := r.db.Model(&ds.Franchise{})
	if query != "" {
		q = q.Where("nama ILIKE ? OR pemilik ILIKE ?", "%"+query+"%", "%"+query+"%")
	}
	err := q.Order("nama asc").Find(&items).Error
	return items, err
}

func (r *Repository) GetFranchiseByID(id uint) (*ds.Franchise, error) {
	var item ds.Franchise
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) CreateFranchise(item *ds.Franchise) error {
	return r.db.Create(item).Error
}

func (r *Repository) UpdateFranchise(item *ds.Franchise) error {
	return r.db.Save(item).Error
}

func (r *Repository) DeleteFranchise(id uint) error {
	return r.db.Delete(&ds.Franchise{}, id).Error
}
