// Package seed prepares a fresh database: it guarantees a usable admin account and
// loads the starter doctor and medicine catalog from CSV files.
package seed

import (
	"os"
	"path/filepath"
	"strings"

	"pharmacy-api/models"
	"pharmacy-api/validation"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin holds the credentials of the bootstrap admin account
type Admin struct {
	Name     string
	Email    string
	Password string
}

// EnsureAdmin creates the admin account, or restores its role and password hash when
// either has been lost. An existing valid password is left alone.
func EnsureAdmin(db *gorm.DB, admin Admin) error {
	email := strings.ToLower(strings.TrimSpace(admin.Email))
	if email == "" || admin.Password == "" {
		return errors.New("admin email and password are required")
	}

	var user models.User
	res := db.Where("email = ?", email).Limit(1).Find(&user)
	switch {
	case res.Error != nil:
		return errors.Wrap(res.Error, "query admin")
	case res.RowsAffected == 0:
		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return errors.Wrap(err, "hash admin password")
		}
		user = models.User{
			Name:         admin.Name,
			Email:        email,
			PasswordHash: string(hash),
			Role:         models.RoleAdmin,
		}
		if err := db.Create(&user).Error; err != nil {
			return errors.Wrap(err, "create admin")
		}
		zap.L().Info("initialized admin account", zap.String("email", email))
		return nil
	}

	updates := map[string]interface{}{}
	if user.Role != models.RoleAdmin {
		updates["role"] = models.RoleAdmin
	}
	if strings.TrimSpace(user.PasswordHash) == "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(admin.Password), bcrypt.DefaultCost)
		if err != nil {
			return errors.Wrap(err, "hash admin password")
		}
		updates["password_hash"] = string(hash)
	}
	if len(updates) == 0 {
		return nil
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return errors.Wrap(err, "repair admin")
	}
	zap.L().Warn("repaired admin account", zap.String("email", email))
	return nil
}

type doctorRow struct {
	Name            string  `csv:"name"`
	ContactNo       string  `csv:"contact_no"`
	Address         string  `csv:"address"`
	Specialization  string  `csv:"specialization"`
	ModeOfConsult   string  `csv:"mode_of_consult"`
	Experience      int     `csv:"experience"`
	ConsultationFee float64 `csv:"consultation_fee"`
	Languages       string  `csv:"languages"` // pipe separated, e.g. English|Hindi
}

type medicineRow struct {
	Name        string  `csv:"name"`
	Category    string  `csv:"category"`
	Price       float64 `csv:"price"`
	Rating      float64 `csv:"rating"`
	Pack        string  `csv:"pack"`
	Description string  `csv:"description"`
	Image       string  `csv:"image"`
	Status      string  `csv:"status"`
}

// Catalog loads doctors.csv and medicines.csv from dir into tables that are still
// empty. Missing files are skipped; rows failing validation abort the load.
func Catalog(db *gorm.DB, dir string) error {
	if err := loadDoctors(db, filepath.Join(dir, "doctors.csv")); err != nil {
		return err
	}
	return loadMedicines(db, filepath.Join(dir, "medicines.csv"))
}

func loadDoctors(db *gorm.DB, path string) error {
	var rows []*doctorRow
	ok, err := readCSV(db, &models.Doctor{}, path, &rows)
	if err != nil || !ok || len(rows) == 0 {
		return err
	}

	doctors := make([]models.Doctor, 0, len(rows))
	for i, row := range rows {
		form := models.NewDoctorForm()
		form.Name = row.Name
		form.ContactNo = row.ContactNo
		form.Address = row.Address
		form.Specialization = row.Specialization
		if row.ModeOfConsult != "" {
			form.ModeOfConsult = row.ModeOfConsult
		}
		form.Experience = row.Experience
		form.ConsultationFee = row.ConsultationFee
		if langs := splitLanguages(row.Languages); len(langs) > 0 {
			form.Languages = langs
		}
		form.Normalize()
		if err := validation.Struct(form); err != nil {
			return errors.Wrapf(err, "%s row %d", path, i+2)
		}
		var d models.Doctor
		form.Apply(&d)
		doctors = append(doctors, d)
	}
	if err := db.Create(&doctors).Error; err != nil {
		return errors.Wrap(err, "seed doctors")
	}
	zap.S().Infof("seeded %d doctors from %s", len(doctors), path)
	return nil
}

func loadMedicines(db *gorm.DB, path string) error {
	var rows []*medicineRow
	ok, err := readCSV(db, &models.Medicine{}, path, &rows)
	if err != nil || !ok || len(rows) == 0 {
		return err
	}

	medicines := make([]models.Medicine, 0, len(rows))
	for i, row := range rows {
		form := models.MedicineForm{
			Name:        row.Name,
			Category:    row.Category,
			Price:       row.Price,
			Rating:      row.Rating,
			Pack:        row.Pack,
			Description: row.Description,
			Image:       row.Image,
			Status:      row.Status,
		}
		form.Normalize()
		if err := validation.Struct(form); err != nil {
			return errors.Wrapf(err, "%s row %d", path, i+2)
		}
		var m models.Medicine
		form.Apply(&m)
		medicines = append(medicines, m)
	}
	if err := db.Create(&medicines).Error; err != nil {
		return errors.Wrap(err, "seed medicines")
	}
	zap.S().Infof("seeded %d medicines from %s", len(medicines), path)
	return nil
}

// readCSV decodes path into out when the table behind model is empty and the file
// exists. It reports whether anything was read.
func readCSV(db *gorm.DB, model interface{}, path string, out interface{}) (bool, error) {
	var count int64
	if err := db.Model(model).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "count rows for %s", path)
	}
	if count > 0 {
		return false, nil
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		zap.S().Debugf("seed file %s not found, skipping", path)
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		return false, errors.Wrapf(err, "parse %s", path)
	}
	return true, nil
}

func splitLanguages(s string) []string {
	var out []string
	for _, part := range strings.Split(s, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
