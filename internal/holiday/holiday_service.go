package holiday

import (
	"context"
	"database/sql"
	"io"

	"go-leaveai/internal/calendar"
	holidayerrors "go-leaveai/internal/holiday/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	Import(ctx context.Context, companyID, filename string, r io.Reader) (ImportResult, error)
	ListByYear(ctx context.Context, companyID string, year int) ([]HolidayResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Import parses the file and replaces the company's holiday calendar in one
// transaction. A file with no usable rows leaves the current calendar intact.
func (s *service) Import(ctx context.Context, companyID, filename string, r io.Reader) (ImportResult, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return ImportResult{}, holidayerrors.ErrInvalidCompanyID
	}

	format, err := DetectFormat(filename)
	if err != nil {
		return ImportResult{}, err
	}

	var parsed ParseResult
	switch format {
	case FormatExcel:
		parsed, err = ParseExcel(r)
	default:
		parsed, err = ParseICS(r)
	}
	if err != nil {
		s.logger.Warn("parse holiday file failed",
			zap.String("company_id", companyID),
			zap.String("format", format),
			zap.Error(err),
		)
		return ImportResult{}, err
	}

	holidays := make([]Holiday, 0, len(parsed.Rows))
	seen := make(map[string]struct{}, len(parsed.Rows))
	for _, row := range parsed.Rows {
		key := row.Date.Format(calendar.DateLayout)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		holidays = append(holidays, Holiday{
			ID:        uuid.New(),
			CompanyID: companyUUID,
			Name:      row.Name,
			Date:      row.Date,
			Type:      TypePublic,
			IsActive:  true,
		})
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("import holidays begin tx failed", zap.Error(err))
		return ImportResult{}, err
	}
	defer tx.Rollback()

	deleted, err := s.repo.WithTx(tx).ReplaceAll(ctx, companyID, holidays)
	if err != nil {
		s.logger.Error("replace holidays failed", zap.String("company_id", companyID), zap.Error(err))
		return ImportResult{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("import holidays commit failed", zap.Error(err))
		return ImportResult{}, err
	}

	s.logger.Info("holidays imported",
		zap.String("company_id", companyID),
		zap.String("format", format),
		zap.Int64("deleted", deleted),
		zap.Int("imported", len(holidays)),
		zap.Int("skipped", len(parsed.Skipped)),
	)

	return ImportResult{
		Format:   format,
		Imported: len(holidays),
		Skipped:  len(parsed.Skipped),
		Errors:   parsed.Skipped,
	}, nil
}

func (s *service) ListByYear(ctx context.Context, companyID string, year int) ([]HolidayResponse, error) {
	if year < 1900 || year > 9999 {
		return nil, holidayerrors.ErrInvalidYear
	}

	holidays, err := s.repo.ListByYear(ctx, companyID, year)
	if err != nil {
		return nil, err
	}

	out := make([]HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, HolidayResponse{
			ID:       h.ID.String(),
			Name:     h.Name,
			Date:     h.Date.Format(calendar.DateLayout),
			Type:     h.Type,
			Location: h.Location,
		})
	}
	return out, nil
}
