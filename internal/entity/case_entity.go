package entity

import "time"

type CaseStatus string

const (
	CaseStatusNuevo      CaseStatus = "nuevo"
	CaseStatusEnProceso  CaseStatus = "en_proceso"
	CaseStatusDenunciado CaseStatus = "denunciado"
	CaseStatusResuelto   CaseStatus = "resuelto"
	CaseStatusCerrado    CaseStatus = "cerrado"
)

// DefaultCrimeType is stored when the interview never captured a type.
// The type keyboard is a suggestion only; any free text is accepted.
const DefaultCrimeType = "otro"

type Case struct {
	Id          uint
	UserId      uint
	CaseNumber  string
	Type        string
	Status      CaseStatus
	Description string
	Location    *string
	AmountLost  float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Evidence struct {
	Id        uint
	CaseId    uint
	FilePath  string
	FileType  string
	CreatedAt time.Time
}

// CaseAnswers carries the interview answers into the finalization
// transaction. Zero values fall back to the documented defaults there.
type CaseAnswers struct {
	Type        string
	Description string
	Location    *string
	AmountLost  float64
}
