package models

import "time"

// Patient is a registered patient. Records are immutable after creation.
type Patient struct {
	ID               int       `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(255);not null;index" json:"name"`
	Age              int       `gorm:"not null" json:"age"`
	Phone            string    `gorm:"type:varchar(32)" json:"phone"`
	Pregnancies      int       `json:"pregnancies"`
	Smoking          bool      `json:"smoking"`
	ContraceptiveUse bool      `json:"contraceptive_use"`
	SexualPartners   int       `json:"sexual_partners"`
	STDHistory       bool      `gorm:"column:std_history" json:"std_history"`
	CreatedAt        time.Time `json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}

type CreatePatientRequest struct {
	Name             string `json:"name" binding:"required,min=2"`
	Age              int    `json:"age" binding:"required,min=1,max=120"`
	Phone            string `json:"phone" binding:"required"`
	Pregnancies      int    `json:"pregnancies" binding:"min=0"`
	Smoking          bool   `json:"smoking"`
	ContraceptiveUse bool   `json:"contraceptive_use"`
	SexualPartners   int    `json:"sexual_partners" binding:"min=0"`
	STDHistory       bool   `json:"std_history"`
}
