package store

import (
	"github.com/jinzhu/gorm"

	"github.com/bitmark-inc/flo-api/schema"
)

// CreateAccount registers an account of a token subject
func (s *FloStore) CreateAccount(id string, role schema.AccountRole, timezone string) (*schema.Account, error) {
	a := schema.Account{
		ID:       id,
		Role:     role,
		Timezone: timezone,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		return nil, err
	}

	return &a, nil
}

// GetAccount returns the account of a given id
func (s *FloStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// IsCareTeamMember reports whether the doctor is in the care team of the patient
func (s *FloStore) IsCareTeamMember(doctorID, patientID string) (bool, error) {
	var count int
	if err := s.ormDB.Model(&schema.CareTeamMember{}).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetCareTeamPatients lists the care team links of a doctor, oldest first
func (s *FloStore) GetCareTeamPatients(doctorID string) ([]schema.CareTeamMember, error) {
	members := make([]schema.CareTeamMember, 0)
	if err := s.ormDB.Where("doctor_id = ?", doctorID).
		Order("created_at").
		Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// GetCareTeamMember returns the link between a doctor and a patient
func (s *FloStore) GetCareTeamMember(doctorID, patientID string) (*schema.CareTeamMember, error) {
	var m schema.CareTeamMember
	if err := s.ormDB.Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdatePatientStatus sets the status a doctor gives to a patient. The notes
// are kept when notes is nil.
func (s *FloStore) UpdatePatientStatus(doctorID, patientID string, status schema.PatientStatus, notes *string) error {
	values := map[string]interface{}{
		"status": status,
	}
	if notes != nil {
		values["doctor_notes"] = *notes
	}

	result := s.ormDB.Model(&schema.CareTeamMember{}).
		Where("doctor_id = ? AND patient_id = ?", doctorID, patientID).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
