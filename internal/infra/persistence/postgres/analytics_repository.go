package postgres

import (
	"context"
	"time"

	"menuqr/internal/domain/entity"
	domainerrors "menuqr/internal/domain/errors"
	"menuqr/internal/domain/repository"
	"menuqr/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// analyticsRepository implements the repository.AnalyticsRepository interface using GORM.
//
// Lifetime counters live on menu_analytics and are bumped with atomic SQL
// increments. Trailing-window counters are never stored; they are computed
// from the menu_scan_events log at read time.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository is the constructor for analyticsRepository.
func NewAnalyticsRepository(db *gorm.DB) repository.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

// CreateRecord creates a zeroed analytics record for a menu. The unique index
// on menu_id plus ON CONFLICT DO NOTHING makes repeated calls no-ops.
func (repo *analyticsRepository) CreateRecord(ctx context.Context, menuID uuid.UUID) error {
	recordM := &model.AnalyticsModel{
		ID:     uuid.New(),
		MenuID: menuID,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "menu_id"}},
			DoNothing: true,
		}).
		Create(recordM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMenuNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create analytics record")
	}

	return nil
}

// IncrementScan appends one scan event and bumps the lifetime counters in the
// same transaction. The counter update runs as a single UPDATE with SQL-side
// arithmetic, so concurrent scans never lose increments.
func (repo *analyticsRepository) IncrementScan(ctx context.Context, menuID uuid.UUID, device entity.DeviceClass, occurredAt time.Time) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		eventM := &model.ScanEventModel{
			ID:          uuid.New(),
			MenuID:      menuID,
			DeviceClass: string(device),
			OccurredAt:  occurredAt,
		}
		if err := tx.Create(eventM).Error; err != nil {
			return errors.Wrap(err, "failed to insert scan event")
		}

		updates := map[string]any{
			"total_scans":        gorm.Expr("total_scans + 1"),
			deviceColumn(device): gorm.Expr(deviceColumn(device) + " + 1"),
			"updated_at":         occurredAt,
		}

		result := tx.Model(&model.AnalyticsModel{}).Where("menu_id = ?", menuID).Updates(updates)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to increment scan counters")
		}
		if result.RowsAffected > 0 {
			return nil
		}

		// No record yet; create it lazily and retry the increment. The
		// ON CONFLICT clause absorbs the race with a concurrent first scan.
		recordM := &model.AnalyticsModel{ID: uuid.New(), MenuID: menuID}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "menu_id"}},
			DoNothing: true,
		}).Create(recordM).Error
		if err != nil {
			return errors.Wrap(err, "failed to create analytics record lazily")
		}

		result = tx.Model(&model.AnalyticsModel{}).Where("menu_id = ?", menuID).Updates(updates)
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to increment scan counters")
		}
		if result.RowsAffected == 0 {
			return repository.ErrAnalyticsNotFound
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, repository.ErrAnalyticsNotFound) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record scan")
	}

	return nil
}

// menuCount carries one grouped COUNT row from the scan event log.
type menuCount struct {
	MenuID uuid.UUID
	Count  int64
}

// FindRecordsByMenuIDs loads the lifetime counters and computes the trailing
// windows from the event log as of now. Menus without a record are skipped.
func (repo *analyticsRepository) FindRecordsByMenuIDs(ctx context.Context, menuIDs []uuid.UUID, now time.Time) ([]*entity.AnalyticsRecord, error) {
	if len(menuIDs) == 0 {
		return []*entity.AnalyticsRecord{}, nil
	}

	var recordMs []*model.AnalyticsModel
	err := repo.db.WithContext(ctx).
		Where("menu_id IN ?", menuIDs).
		Find(&recordMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find analytics records")
	}
	if len(recordMs) == 0 {
		return []*entity.AnalyticsRecord{}, nil
	}

	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayCounts, err := repo.countEventsSince(ctx, menuIDs, midnight)
	if err != nil {
		return nil, err
	}
	weekCounts, err := repo.countEventsSince(ctx, menuIDs, now.AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	monthCounts, err := repo.countEventsSince(ctx, menuIDs, now.AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	uniqueCounts, err := repo.countDistinctScanDays(ctx, menuIDs)
	if err != nil {
		return nil, err
	}

	records := make([]*entity.AnalyticsRecord, 0, len(recordMs))
	for _, recordM := range recordMs {
		record := model.ToAnalyticsDomain(recordM)
		record.ScansToday = todayCounts[record.MenuID]
		record.ScansThisWeek = weekCounts[record.MenuID]
		record.ScansThisMonth = monthCounts[record.MenuID]
		record.UniqueScans = uniqueCounts[record.MenuID]
		records = append(records, record)
	}

	return records, nil
}

// DeleteByMenuID removes a menu's analytics record together with its event log.
func (repo *analyticsRepository) DeleteByMenuID(ctx context.Context, menuID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_id = ?", menuID).Delete(&model.ScanEventModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete scan events")
		}
		if err := tx.Where("menu_id = ?", menuID).Delete(&model.AnalyticsModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete analytics record")
		}

		return nil
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete analytics for menu")
	}

	return nil
}

// countEventsSince counts scan events per menu with occurred_at at or after the cutoff.
func (repo *analyticsRepository) countEventsSince(ctx context.Context, menuIDs []uuid.UUID, since time.Time) (map[uuid.UUID]int64, error) {
	var rows []menuCount
	err := repo.db.WithContext(ctx).
		Model(&model.ScanEventModel{}).
		Select("menu_id, COUNT(*) AS count").
		Where("menu_id IN ? AND occurred_at >= ?", menuIDs, since).
		Group("menu_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count scan events")
	}

	return toCountMap(rows), nil
}

// countDistinctScanDays counts, per menu, the distinct calendar days carrying
// at least one scan. This approximates distinct visitors without storing any
// visitor identifier.
func (repo *analyticsRepository) countDistinctScanDays(ctx context.Context, menuIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []menuCount
	err := repo.db.WithContext(ctx).
		Model(&model.ScanEventModel{}).
		Select("menu_id, COUNT(DISTINCT DATE(occurred_at)) AS count").
		Where("menu_id IN ?", menuIDs).
		Group("menu_id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to count distinct scan days")
	}

	return toCountMap(rows), nil
}

func toCountMap(rows []menuCount) map[uuid.UUID]int64 {
	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.MenuID] = row.Count
	}

	return counts
}

// deviceColumn maps a device class onto its counter column.
func deviceColumn(device entity.DeviceClass) string {
	switch device {
	case entity.DeviceTablet:
		return "tablet_scans"
	case entity.DeviceDesktop:
		return "desktop_scans"
	default:
		return "mobile_scans"
	}
}
