package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/consoleforeveryone/rental-api/internal/entity"
)

// InquiryRepository owns the rental_inquiries table. Inquiries are
// insert-only; there are no update or delete flows.
type InquiryRepository struct {
	DB *sql.DB
}

func NewInquiryRepository(db *sql.DB) *InquiryRepository {
	return &InquiryRepository{DB: db}
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	query := `
		INSERT INTO rental_inquiries
			(id, name, email, phone, selected_games, custom_games, number_of_controllers,
			 address, full_address, start_date, start_time, end_date, end_time, message,
			 status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	addressJSON, err := json.Marshal(inquiry.Address)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		inquiry.ID,
		inquiry.Name,
		inquiry.Email,
		inquiry.Phone,
		pq.Array(inquiry.SelectedGames),
		nullString(inquiry.CustomGames),
		inquiry.NumberOfControllers,
		addressJSON,
		inquiry.Address.FullAddress(),
		inquiry.StartDate,
		inquiry.StartTime,
		inquiry.EndDate,
		inquiry.EndTime,
		nullString(inquiry.Message),
		inquiry.Status,
		inquiry.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return entity.ErrDuplicateInquiry
		}

		log.Printf("[DB] Insert failed for inquiry %s: %v", inquiry.ID, err)
		return err
	}

	return nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
