package search

import (
	"testing"

	"pharmacy-api/models"
)

func doctors() []models.Doctor {
	return []models.Doctor{
		{ID: 1, Name: "A", Specialization: "Cardiologist", ModeOfConsult: models.ModeHospitalVisit, Experience: 3, ConsultationFee: 300, Languages: []string{"English"}},
		{ID: 2, Name: "B", Specialization: "Dermatologist", ModeOfConsult: models.ModeOnlineConsult, Experience: 8, ConsultationFee: 500, Languages: []string{"Hindi"}},
		{ID: 3, Name: "C", Specialization: "Cardiologist", ModeOfConsult: models.ModeBoth, Experience: 12, ConsultationFee: 1000, Languages: []string{"English", "Tamil"}},
		{ID: 4, Name: "D", Specialization: "Neurologist", ModeOfConsult: models.ModeBoth, Experience: 20, ConsultationFee: 1500, Languages: []string{"Hindi", "Bengali"}},
		{ID: 5, Name: "E", Specialization: "Pediatrician", ModeOfConsult: models.ModeOnlineConsult, Experience: 16, ConsultationFee: 50, Languages: []string{"English"}},
	}
}

func ids(ds []models.Doctor) []uint {
	out := make([]uint, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.ID)
	}
	return out
}

func assertIDs(t *testing.T, got []models.Doctor, want ...uint) {
	t.Helper()
	g := ids(got)
	if len(g) != len(want) {
		t.Fatalf("expected ids %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected ids %v, got %v", want, g)
		}
	}
}

func TestEmptyFiltersKeepEverything(t *testing.T) {
	assertIDs(t, Apply(doctors(), NewFilters()), 1, 2, 3, 4, 5)
}

func TestSpecialization(t *testing.T) {
	f := NewFilters()
	f.SetSpecialization("Cardiologist")
	assertIDs(t, Apply(doctors(), f), 1, 3)

	f.SetSpecialization("")
	if f.Specialization != models.SpecializationAll {
		t.Errorf("expected reset to All, got %q", f.Specialization)
	}
	assertIDs(t, Apply(doctors(), f), 1, 2, 3, 4, 5)
}

func TestModeIncludesBoth(t *testing.T) {
	f := NewFilters()
	f.Toggle(GroupConsultMode, models.ModeHospitalVisit)
	assertIDs(t, Apply(doctors(), f), 1, 3, 4)
}

func TestExperienceBucketsUnion(t *testing.T) {
	f := NewFilters()
	f.Toggle(GroupExperience, "11-16")
	f.Toggle(GroupExperience, "17+")
	assertIDs(t, Apply(doctors(), f), 3, 4, 5)
}

func TestFeeBucketEdgesOverlap(t *testing.T) {
	f := NewFilters()
	f.Toggle(GroupFee, "100-500")
	assertIDs(t, Apply(doctors(), f), 1, 2)

	f.Clear()
	f.Toggle(GroupFee, "500-1000")
	assertIDs(t, Apply(doctors(), f), 2, 3)

	f.Clear()
	f.Toggle(GroupFee, "1000+")
	assertIDs(t, Apply(doctors(), f), 3, 4)
}

func TestUnknownBucketConstrainsNothing(t *testing.T) {
	f := NewFilters()
	f.Toggle(GroupFee, "cheap")
	assertIDs(t, Apply(doctors(), f), 1, 2, 3, 4, 5)
}

func TestGroupsIntersect(t *testing.T) {
	f := NewFilters()
	f.Toggle(GroupLanguage, "Hindi")
	f.Toggle(GroupConsultMode, models.ModeHospitalVisit)
	assertIDs(t, Apply(doctors(), f), 4)
}

func TestToggleRemovesSelectedValue(t *testing.T) {
	f := NewFilters()
	f.Toggle(GroupLanguage, "Hindi")
	f.Toggle(GroupLanguage, "Tamil")
	f.Toggle(GroupLanguage, "Hindi")
	if len(f.Languages) != 1 || f.Languages[0] != "Tamil" {
		t.Fatalf("expected [Tamil], got %v", f.Languages)
	}
	f.Toggle(Group("nope"), "x")
	f.Clear()
	if len(f.Languages) != 0 || f.Specialization != models.SpecializationAll {
		t.Errorf("Clear left state behind: %+v", f)
	}
}

func TestApplyMedicines(t *testing.T) {
	meds := []models.Medicine{
		{ID: 1, Name: "Painaway", Category: "Pain Relief", Status: models.MedicineAvailable},
		{ID: 2, Name: "GlucoGuard", Category: "Diabetic Care", Description: "sugar control", Status: models.MedicineAvailable},
		{ID: 3, Name: "Old Balm", Category: "Pain Relief", Status: models.MedicineInactive},
	}
	got := ApplyMedicines(meds, MedicineFilters{Category: "Pain Relief"})
	if len(got) != 2 {
		t.Fatalf("expected 2 pain relief medicines, got %d", len(got))
	}
	got = ApplyMedicines(meds, MedicineFilters{Category: "Pain Relief", Status: models.MedicineAvailable})
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("unexpected result %+v", got)
	}
	got = ApplyMedicines(meds, MedicineFilters{Term: "SUGAR"})
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("expected description match, got %+v", got)
	}
}
