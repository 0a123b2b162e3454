package repository

import (
	"agensi-backend/internal/app/ds"
)

// Mitra order methods.

func (r *Repository) GetMitraOrders(query string) ([]ds.MitraOrder, error) {
	var items []ds.MitraOrder
	q := r.db.Model(&ds.MitraOrder{}).Preload("Worker")
	if query != "" {
		q = q.Where("nama_customer ILIKE ? OR layanan ILIKE ?", "%"+query+"%", "%"+query+"%")
	}
	err := q.Order("tanggal desc, id desc").Find(&items).Error
	return items, err
}

func (r *Repository) GetMitraOrderByID(id uint) (*ds.MitraOrder, error) {
	var item ds.MitraOrder
	err := r.db.Preload("Worker").First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) CreateMitraOrder(item *ds.MitraOrder) error {
	return r.db.Create(item).Error
}

func (r *Repository) UpdateMitraOrder(item *ds.MitraOrder) error {
	return r.db.Save(item).Error
}

func (r *Repository) DeleteMitraOrder(id uint) error {
	return r.db.Delete(&ds.MitraOrder{}, id).Error
}
