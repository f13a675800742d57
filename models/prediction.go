package models

import "time"

// Prediction is one risk assessment for a patient. Rows are append-only and
// never updated in place.
type Prediction struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	PatientID int       `gorm:"not null;index" json:"patient_id"`
	RiskScore float64   `gorm:"not null" json:"risk_score"`
	RiskLevel string    `gorm:"type:varchar(16);not null" json:"risk_level"`
	CreatedAt time.Time `json:"created_at"`

	Patient Patient `gorm:"foreignKey:PatientID" json:"-"`
}

func (Prediction) TableName() string {
	return "predictions"
}

type PredictRequest struct {
	PatientID        int  `json:"patient_id" binding:"required,min=1"`
	Age              int  `json:"age" binding:"required,min=1,max=120"`
	Pregnancies      int  `json:"pregnancies" binding:"min=0"`
	Smoking          bool `json:"smoking"`
	ContraceptiveUse bool `json:"contraceptive_use"`
	SexualPartners   int  `json:"sexual_partners" binding:"min=0"`
	STDHistory       bool `json:"std_history"`
}

type PredictionResponse struct {
	ID              int       `json:"id"`
	PatientID       int       `json:"patient_id"`
	RiskScore       float64   `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	CreatedAt       time.Time `json:"created_at"`
	Recommendations []string  `json:"recommendations"`
}
