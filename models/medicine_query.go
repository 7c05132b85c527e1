package models

import (
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type MedicineQuery struct {
	Name     string
	Category string
	Status   string
}

func ParseMedicineQuery(values url.Values) MedicineQuery {
	return MedicineQuery{
		Name:     strings.TrimSpace(values.Get("q")),
		Category: strings.TrimSpace(values.Get("category")),
		Status:   strings.TrimSpace(values.Get("status")),
	}
}

func (q MedicineQuery) Scope(db *gorm.DB) *gorm.DB {
	if q.Name != "" {
		db = db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(q.Name))+"%")
	}
	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	return db
}

// FindMedicines returns every medicine matching q, newest first
func FindMedicines(db *gorm.DB, q MedicineQuery) ([]Medicine, error) {
	var medicines []Medicine
	err := db.Model(&Medicine{}).
		Scopes(q.Scope).
		Order("created_at DESC").
		Order("id DESC").
		Find(&medicines).Error
	if err != nil {
		return nil, errors.Wrap(err, "query medicines")
	}
	return medicines, nil
}
