package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Okemwag/CervicalCancer/models"
)

const defaultPageLimit = 100

type PatientService interface {
	Create(ctx context.Context, req models.CreatePatientRequest) (*models.Patient, error)
	Get(ctx context.Context, id int) (*models.Patient, error)
	List(ctx context.Context, skip, limit int) ([]models.Patient, error)
}

type patientService struct {
	db *gorm.DB
}

func NewPatientService(db *gorm.DB) PatientService {
	return &patientService{db: db}
}

func (s *patientService) Create(ctx context.Context, req models.CreatePatientRequest) (*models.Patient, error) {
	patient := models.Patient{
		Name:             req.Name,
		Age:              req.Age,
		Phone:            req.Phone,
		Pregnancies:      req.Pregnancies,
		Smoking:          req.Smoking,
		ContraceptiveUse: req.ContraceptiveUse,
		SexualPartners:   req.SexualPartners,
		STDHistory:       req.STDHistory,
	}

	if err := s.db.WithContext(ctx).Create(&patient).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &patient, nil
}

func (s *patientService) Get(ctx context.Context, id int) (*models.Patient, error) {
	var patient models.Patient
	if err := s.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &patient, nil
}

func (s *patientService) List(ctx context.Context, skip, limit int) ([]models.Patient, error) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if skip < 0 {
		skip = 0
	}

	var patients []models.Patient
	if err := s.db.WithContext(ctx).
		Order("id").
		Offset(skip).
		Limit(limit).
		Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return patients, nil
}
