package dto

import "time"

type CaseResponse struct {
	Id          uint      `json:"id"`
	UserId      uint      `json:"user_id"`
	CaseNumber  string    `json:"case_number"`
	Type        string    `json:"type"`
	Status      string    `json:"status"`
	Description string    `json:"description"`
	Location    *string   `json:"location"`
	AmountLost  float64   `json:"amount_lost"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EvidenceResponse struct {
	Id        uint      `json:"id"`
	CaseId    uint      `json:"case_id"`
	FilePath  string    `json:"file_path"`
	FileType  string    `json:"file_type"`
	CreatedAt time.Time `json:"created_at"`
}

type CaseDetailResponse struct {
	CaseResponse
	User      *ActiveUserResponse `json:"user"`
	Evidences []EvidenceResponse  `json:"evidences"`
}

type UpdateCaseStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=nuevo en_proceso denunciado resuelto cerrado"`
}

type ActiveUserResponse struct {
	Id               uint      `json:"id"`
	TelegramID       string    `json:"telegram_id"`
	TelegramUsername string    `json:"telegram_username"`
	Role             string    `json:"role"`
	LastActive       time.Time `json:"last_active"`
}
