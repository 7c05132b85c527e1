package handlers

import (
	"net/http"

	"pharmacy-api/config"
	"pharmacy-api/models"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// DashboardSummary is the headline numbers of the admin dashboard
type DashboardSummary struct {
	Doctors           int64            `json:"doctors"`
	DoctorsByMode     map[string]int64 `json:"doctors_by_mode"`
	Medicines         int64            `json:"medicines"`
	MedicinesByStatus map[string]int64 `json:"medicines_by_status"`
	Contacts          int64            `json:"contacts"`
	Bookings          int64            `json:"bookings"`
	Users             int64            `json:"users"`
}

type groupCount struct {
	Grp   string
	Count int64
}

// AdminSummary aggregates the catalog and inbox for the admin dashboard
func AdminSummary(c *gin.Context) {
	summary := DashboardSummary{
		DoctorsByMode:     map[string]int64{},
		MedicinesByStatus: map[string]int64{},
	}

	counts := []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Doctor{}, &summary.Doctors},
		{&models.Medicine{}, &summary.Medicines},
		{&models.Contact{}, &summary.Contacts},
		{&models.Booking{}, &summary.Bookings},
		{&models.User{}, &summary.Users},
	}
	for _, n := range counts {
		if err := config.DB.Model(n.model).Count(n.dst).Error; err != nil {
			serverError(c, "Failed to build summary", errors.Wrap(err, "count rows"))
			return
		}
	}

	if err := groupBy(&models.Doctor{}, "mode_of_consult", summary.DoctorsByMode); err != nil {
		serverError(c, "Failed to build summary", err)
		return
	}
	if err := groupBy(&models.Medicine{}, "status", summary.MedicinesByStatus); err != nil {
		serverError(c, "Failed to build summary", err)
		return
	}

	c.JSON(http.StatusOK, models.Envelope[DashboardSummary]{Success: true, Data: summary})
}

func groupBy(model interface{}, column string, into map[string]int64) error {
	var rows []groupCount
	err := config.DB.Model(model).
		Select(column + " AS grp, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return errors.Wrapf(err, "group by %s", column)
	}
	for _, r := range rows {
		into[r.Grp] = r.Count
	}
	return nil
}

// AdminListUsers returns registered accounts, optionally narrowed by ?role=
func AdminListUsers(c *gin.Context) {
	var users []models.User
	query := config.DB.Order("created_at DESC").Order("id DESC")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if err := query.Find(&users).Error; err != nil {
		serverError(c, "Failed to fetch users", errors.Wrap(err, "query users"))
		return
	}
	c.JSON(http.StatusOK, models.NewList(users))
}
