package application

import (
	"context"
	"fmt"
	"log"

	"bootcamp/internal/ports/input"
	"bootcamp/internal/ports/output"
)

var _ input.AdminUseCase = (*AdminService)(nil)

type AdminService struct {
	schema output.SchemaManager
}

func NewAdminService(schema output.SchemaManager) *AdminService {
	return &AdminService{schema: schema}
}

// InitService creates the tables that do not exist yet.
func (s *AdminService) InitService(ctx context.Context) error {
	if err := s.schema.Initialize(ctx); err != nil {
		return fmt.Errorf("init service: %w", err)
	}
	log.Println("✅ Schema initialized.")
	return nil
}

// ResetService drops every service table. Irreversible.
func (s *AdminService) ResetService(ctx context.Context) error {
	if err := s.schema.Reset(ctx); err != nil {
		return fmt.Errorf("reset service: %w", err)
	}
	log.Println("🗑️ Schema reset.")
	return nil
}
