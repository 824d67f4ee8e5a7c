package store

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"

	"github.com/bitmark-inc/flo-api/schema"
)

// FloCore is the relational datastore of accounts
type FloCore interface {
	Pinger
	AccountStore
}

// AccountStore keeps accounts and reads care team links
type AccountStore interface {
	CreateAccount(id string, role schema.AccountRole, timezone string) (*schema.Account, error)
	GetAccount(id string) (*schema.Account, error)
	IsCareTeamMember(doctorID, patientID string) (bool, error)
	GetCareTeamPatients(doctorID string) ([]schema.CareTeamMember, error)
	GetCareTeamMember(doctorID, patientID string) (*schema.CareTeamMember, error)
	UpdatePatientStatus(doctorID, patientID string, status schema.PatientStatus, notes *string) error
}

// FloStore is an implementation of FloCore
type FloStore struct {
	ormDB *gorm.DB
}

func NewFloStore(ormDB *gorm.DB) *FloStore {
	return &FloStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *FloStore) Ping() error {
	return s.ormDB.DB().Ping()
}
