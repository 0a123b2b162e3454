package repository

import (
	"agensi-backend/internal/app/ds"
)

// Worker methods.

func (r *Repository) GetWorkers(query string) ([]ds.Worker, error) {
	var items []ds.Worker
	q := r.db.Model(&ds.Worker{})
	if query != "" {
		q = q.Where("nama ILIKE ? OR keahlian ILIKE ?", "%"+query+"%", "%"+query+"%")
	}
	err := q.Order("nama asc").Find(&items).Error
	return items, err
}

func (r *Repository) GetWorkerByID(id uint) (*ds.Worker, error) {
	var item ds.Worker
	err := r.db.First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repository) CreateWorker(item *ds.Worker) error {
	return r.db.Create(item).Error
}

func (r *Repository) UpdateWorker(item *ds.Worker) error {
	return r.db.Save(item).Error
}

func (r *Repository) DeleteWorker(id uint) error {
	return r.db.Delete(&ds.Worker{}, id).Error
}
