package service

import (
	"encoding/json"
	"time"

	"catalog-admin-backend/internal/repository"
)

type AuditService struct {
	auditRepo *repository.AuditRepository
}

func NewAuditService(auditRepo *repository.AuditRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// AuditEntry is the read shape of one audit row. AdminEmail is resolved from
// the actor when that account still exists.
type AuditEntry struct {
	ID         uint            `json:"id"`
	AdminID    *uint           `json:"admin_id"`
	AdminEmail *string         `json:"admin_email"`
	Action     string          `json:"action"`
	Entity     string          `json:"entity"`
	EntityID   *uint           `json:"entity_id"`
	Details    json.RawMessage `json:"details"`
	IPAddress  string          `json:"ip_address"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ListPaginated returns audit entries newest-first
func (s *AuditService) ListPaginated(offset, limit int) ([]AuditEntry, int64, error) {
	logs, total, err := s.auditRepo.ListPaginated(offset, limit)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]AuditEntry, 0, len(logs))
	for _, l := range logs {
		entry := AuditEntry{
			ID:        l.ID,
			AdminID:   l.AdminID,
			Action:    l.Action,
			Entity:    l.Entity,
			EntityID:  l.EntityID,
			Details:   json.RawMessage(l.Details),
			IPAddress: l.IPAddress,
			CreatedAt: l.CreatedAt,
		}
		if l.Admin != nil {
			email := l.Admin.Email
			entry.AdminEmail = &email
		}
		entries = append(entries, entry)
	}
	return entries, total, nil
}
