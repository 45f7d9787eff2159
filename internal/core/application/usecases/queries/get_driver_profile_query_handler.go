package queries

import (
	"context"
	"database/sql"

	"logipeek/internal/core/domain/model/driver"
	"logipeek/internal/core/domain/model/kernel"
	"logipeek/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverProfileQueryHandler reads one driver profile from the database.
type GetDriverProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverProfileQueryHandler creates a handler for driver profile
// queries. Requires a GORM database connection for query execution.
func NewGetDriverProfileQueryHandler(db *gorm.DB) GetDriverProfileQueryHandler {
	return GetDriverProfileQueryHandler{db: db}
}

// Handle executes the query for one driver.
// Returns errs.ObjectNotFoundError when the driver does not exist.
func (h GetDriverProfileQueryHandler) Handle(
	ctx context.Context,
	query GetDriverProfileQuery,
) (GetDriverProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverProfileQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			availability,
			rating,
			total_trips,
			total_earnings,
			license_image_url,
			license_approved
		FROM drivers
		WHERE id = ?
	`, query.DriverID().String()).Rows()
	if err != nil {
		return GetDriverProfileQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetDriverProfileQueryResponse{}, err
		}
		return GetDriverProfileQueryResponse{},
			errs.NewObjectNotFoundError("driverID", query.DriverID())
	}

	var resp GetDriverProfileQueryResponse
	var id uuid.UUID
	var availability int
	var licenseImageURL sql.NullString
	var licenseApproved sql.NullBool

	err = rows.Scan(
		&id,
		&availability,
		&resp.Rating,
		&resp.TotalTrips,
		&resp.TotalEarnings,
		&licenseImageURL,
		&licenseApproved,
	)
	if err != nil {
		return GetDriverProfileQueryResponse{}, err
	}

	driverID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetDriverProfileQueryResponse{}, idErr
	}
	resp.ID = driverID
	resp.Availability = driver.Availability(availability).String()
	resp.LicenseStatus = licenseStatus(licenseImageURL, licenseApproved)

	return resp, rows.Err()
}

func licenseStatus(imageURL sql.NullString, approved sql.NullBool) string {
	switch {
	case !imageURL.Valid:
		return "none"
	case !approved.Valid:
		return "pending"
	case approved.Bool:
		return "approved"
	default:
		return "rejected"
	}
}
