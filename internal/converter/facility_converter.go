package converter

import (
	"time"

	"go-medical-seeder/internal/domain/entity"
	"go-medical-seeder/internal/seed"

	"github.com/google/uuid"
)

// FacilityToHospital converts a facility descriptor into a Hospital owned by admin
func FacilityToHospital(f seed.Facility, admin *entity.User, now time.Time) *entity.Hospital {
	return &entity.Hospital{
		ID:            uuid.New(),
		UserID:        admin.ID,
		Name:          f.Name,
		Phone:         f.Phone,
		Address:       f.Address,
		LicenseNumber: f.LicenseNumber,
		IsVerified:    f.IsVerified,
		Location:      entity.NewGeoPoint(f.Longitude, f.Latitude),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// FacilityToLab converts a facility descriptor into a Lab owned by admin
func FacilityToLab(f seed.Facility, admin *entity.User, now time.Time) *entity.Lab {
	testTypes := make([]string, len(f.TestTypes))
	copy(testTypes, f.TestTypes)

	return &entity.Lab{
		ID:            uuid.New(),
		UserID:        admin.ID,
		Name:          f.Name,
		Phone:         f.Phone,
		Address:       f.Address,
		LicenseNumber: f.LicenseNumber,
		IsVerified:    f.IsVerified,
		Location:      entity.NewGeoPoint(f.Longitude, f.Latitude),
		TestTypes:     testTypes,
		AveragePrice:  f.AveragePrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
