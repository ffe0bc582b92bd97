package service

import (
	"testing"
	"time"

	"hospital-management-backend/internal/models"
	"hospital-management-backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAppointmentService(db *gorm.DB) *AppointmentService {
	return NewAppointmentService(
		repository.NewAppointmentRepo(db),
		repository.NewAvailabilityRepo(db),
		repository.NewTreatmentRepo(db),
		repository.NewDoctorRepo(db),
		repository.NewPatientRepo(db),
	)
}

func TestAppointmentCreateDefaultsToBooked(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)

	doctor := seedDoctorWithUser(t, db, "doc@x.com")
	patient := seedPatientWithUser(t, db, "pat@x.com")

	start := time.Now().Add(24 * time.Hour)
	appointment, err := svc.CreateOrUpdate(CreateUpdateAppointmentInput{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Start:     start,
		End:       start.Add(30 * time.Minute),
		Reason:    "checkup",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentBooked, appointment.Status)
	assert.NotZero(t, appointment.ID)
}

func TestAppointmentCreateMarksSlotBooked(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)

	doctor := seedDoctorWithUser(t, db, "doc@x.com")
	patient := seedPatientWithUser(t, db, "pat@x.com")

	slot := &models.DoctorAvailability{
		DoctorID:      doctor.ID,
		StartDatetime: time.Now().Add(24 * time.Hour),
		EndDatetime:   time.Now().Add(25 * time.Hour),
	}
	require.NoError(t, db.Create(slot).Error)

	_, err := svc.CreateOrUpdate(CreateUpdateAppointmentInput{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Start:     slot.StartDatetime,
		End:       slot.EndDatetime,
		SlotID:    slot.ID,
	})
	require.NoError(t, err)

	var got models.DoctorAvailability
	require.NoError(t, db.First(&got, slot.ID).Error)
	assert.True(t, got.IsBooked)
}

func TestAppointmentCreateUnknownRefs(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)

	_, err := svc.CreateOrUpdate(CreateUpdateAppointmentInput{
		DoctorID:  77,
		PatientID: 88,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAppointmentUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)

	doctor := seedDoctorWithUser(t, db, "doc@x.com")
	patient := seedPatientWithUser(t, db, "pat@x.com")

	created, err := svc.CreateOrUpdate(CreateUpdateAppointmentInput{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Start:     time.Now(),
		End:       time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	updated, err := svc.CreateOrUpdate(CreateUpdateAppointmentInput{
		AppointmentID: created.ID,
		Status:        models.AppointmentCompleted,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCompleted, updated.Status)
}

func TestRecordTreatmentOncePerAppointment(t *testing.T) {
	db := newTestDB(t)
	svc := newAppointmentService(db)

	doctor := seedDoctorWithUser(t, db, "doc@x.com")
	patient := seedPatientWithUser(t, db, "pat@x.com")

	appointment, err := svc.CreateOrUpdate(CreateUpdateAppointmentInput{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		Start:     time.Now(),
		End:       time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	treatment, err := svc.RecordTreatment(CreateUpdateTreatmentInput{
		AppointmentID: appointment.ID,
		Diagnosis:     "flu",
		Prescription:  "rest",
	})
	require.NoError(t, err)
	assert.Equal(t, doctor.ID, treatment.DoctorID)
	assert.Equal(t, patient.ID, treatment.PatientID)

	_, err = svc.RecordTreatment(CreateUpdateTreatmentInput{
		AppointmentID: appointment.ID,
		Diagnosis:     "second opinion",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	// The update path modifies the existing record instead
	updated, err := svc.RecordTreatment(CreateUpdateTreatmentInput{
		TreatmentID:   treatment.ID,
		AppointmentID: appointment.ID,
		Diagnosis:     "influenza",
	})
	require.NoError(t, err)
	assert.Equal(t, treatment.ID, updated.ID)
	assert.Equal(t, "influenza", updated.Diagnosis)

	got, err := svc.GetTreatment(appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, "influenza", got.Diagnosis)
}
