package models

import (
	"errors"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(Tables...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedDoctors(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	doctors := []Doctor{
		{Name: "Rohan Mehta", ContactNo: "9000000001", Address: "Pune", Specialization: "Cardiologist", ModeOfConsult: ModeHospitalVisit, Experience: 10, ConsultationFee: 800, Languages: []string{"English", "Hindi"}},
		{Name: "Ananya Iyer", ContactNo: "9000000002", Address: "Chennai", Specialization: "Dermatologist", ModeOfConsult: ModeOnlineConsult, Experience: 4, ConsultationFee: 300, Languages: []string{"English", "Telugu"}},
		{Name: "Vikram Singh", ContactNo: "9000000003", Address: "Delhi", Specialization: "Cardiologist", ModeOfConsult: ModeBoth, Experience: 20, ConsultationFee: 1500, Languages: []string{"Punjabi"}},
		{Name: "Priya Nair", ContactNo: "9000000004", Address: "Kochi", Specialization: "Pediatrician", ModeOfConsult: ModeBoth, Experience: 12, ConsultationFee: 500, Languages: []string{"Malayalam", "Hindi"}},
	}
	for i := range doctors {
		doctors[i].CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if err := db.Create(&doctors[i]).Error; err != nil {
			t.Fatalf("seed doctor: %v", err)
		}
	}
}

func names(ds []Doctor) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Name
	}
	return out
}

func findDoctors(t *testing.T, db *gorm.DB, raw string) []Doctor {
	t.Helper()
	values, err := url.ParseQuery(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	q, err := ParseDoctorQuery(values)
	if err != nil {
		t.Fatalf("ParseDoctorQuery(%q): %v", raw, err)
	}
	doctors, err := FindDoctors(db, q)
	if err != nil {
		t.Fatalf("FindDoctors(%q): %v", raw, err)
	}
	return doctors
}

func TestFindDoctorsFilters(t *testing.T) {
	db := openTestDB(t)
	seedDoctors(t, db)

	cases := []struct {
		query string
		want  []string
	}{
		{"", []string{"Priya Nair", "Vikram Singh", "Ananya Iyer", "Rohan Mehta"}},
		{"q=IYER", []string{"Ananya Iyer"}},
		{"specialization=All", []string{"Priya Nair", "Vikram Singh", "Ananya Iyer", "Rohan Mehta"}},
		{"specialization=Cardiologist", []string{"Vikram Singh", "Rohan Mehta"}},
		{"modeOfConsult=Online+Consult", []string{"Priya Nair", "Vikram Singh", "Ananya Iyer"}},
		{"experienceMin=5&experienceMax=15", []string{"Priya Nair", "Rohan Mehta"}},
		{"experienceMin=11", []string{"Priya Nair", "Vikram Singh"}},
		{"experienceMax=10", []string{"Ananya Iyer", "Rohan Mehta"}},
		{"feeMin=500&feeMax=800", []string{"Priya Nair", "Rohan Mehta"}},
		{"language=Hindi", []string{"Priya Nair", "Rohan Mehta"}},
		{"language=Hin", nil},
		{"language=hindi", nil},
		{"specialization=Cardiologist&modeOfConsult=Online+Consult", []string{"Vikram Singh"}},
		{"q=%25", nil},
	}
	for _, tc := range cases {
		t.Run(tc.query, func(t *testing.T) {
			got := names(findDoctors(t, db, tc.query))
			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}
}

func TestLanguagesRoundTripInOrder(t *testing.T) {
	db := openTestDB(t)
	d := Doctor{Name: "Kavya Rao", ContactNo: "9000000009", Address: "Bengaluru", Specialization: "Dentist", ModeOfConsult: ModeBoth, Languages: []string{"English", "Telugu"}}
	if err := db.Create(&d).Error; err != nil {
		t.Fatalf("create: %v", err)
	}
	var got Doctor
	if err := db.First(&got, d.ID).Error; err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Languages) != 2 || got.Languages[0] != "English" || got.Languages[1] != "Telugu" {
		t.Errorf("expected [English Telugu], got %v", got.Languages)
	}
}

func TestParseDoctorQueryRejectsMalformedNumbers(t *testing.T) {
	for _, raw := range []string{"experienceMin=abc", "experienceMax=1.5", "feeMin=cheap", "feeMax=NaN"} {
		values, _ := url.ParseQuery(raw)
		_, err := ParseDoctorQuery(values)
		var qerr *QueryError
		if !errors.As(err, &qerr) {
			t.Errorf("%s: expected *QueryError, got %v", raw, err)
		}
	}

	values, _ := url.ParseQuery("experienceMin=08&feeMax=499.5")
	q, err := ParseDoctorQuery(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ExperienceMin == nil || *q.ExperienceMin != 8 {
		t.Errorf("expected experienceMin 8, got %v", q.ExperienceMin)
	}
	if q.FeeMax == nil || *q.FeeMax != 499.5 {
		t.Errorf("expected feeMax 499.5, got %v", q.FeeMax)
	}
}

func TestFindMedicinesByCategory(t *testing.T) {
	db := openTestDB(t)
	meds := []Medicine{
		{Name: "Dolo 650", Category: "Pain Relief", Status: MedicineAvailable},
		{Name: "Liv 52", Category: "Liver Care", Status: MedicineAvailable},
		{Name: "Painaway Gel", Category: "Pain Relief", Status: MedicineInactive},
	}
	if err := db.Create(&meds).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := FindMedicines(db, ParseMedicineQuery(url.Values{"category": {"Pain Relief"}}))
	if err != nil {
		t.Fatalf("FindMedicines: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 medicines, got %d", len(got))
	}
	for _, m := range got {
		if m.Category != "Pain Relief" {
			t.Errorf("unexpected category %q", m.Category)
		}
	}

	got, err = FindMedicines(db, ParseMedicineQuery(url.Values{"q": {"gel"}, "status": {MedicineInactive}}))
	if err != nil {
		t.Fatalf("FindMedicines: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Painaway Gel" {
		t.Errorf("expected Painaway Gel, got %+v", got)
	}
}
