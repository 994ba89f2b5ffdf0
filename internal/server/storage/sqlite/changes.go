package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/contentkeeper/internal/checksum"
	"github.com/iudanet/contentkeeper/internal/models"
	"github.com/iudanet/contentkeeper/internal/server/storage"
)

// SaveChange применяет входящее изменение к хранимому состоянию сущности.
// Для каждой пары (entity_type, entity_id) пользователя хранится одна
// запись: входящее изменение замещает её только если новее по LWW.
func (s *Storage) SaveChange(ctx context.Context, record *models.ChangeRecord) (bool, error) {
	existing, err := s.getEntityRecord(ctx, record.UserID, record.EntityType, record.EntityID)
	if err != nil && !errors.Is(err, storage.ErrChangeNotFound) {
		return false, fmt.Errorf("failed to check existing change: %w", err)
	}

	if existing == nil {
		if err := s.insertChange(ctx, record); err != nil {
			return false, err
		}
		return true, nil
	}

	// Очередь клиента может доставить изменение дважды: replay
	// отдельного действия плюс полный sync. Тот же ID - уже принято.
	if existing.ID == record.ID {
		return true, nil
	}

	if !record.IsNewerThan(existing) {
		return false, nil
	}

	if err := s.updateChange(ctx, mergeRecords(existing, record)); err != nil {
		return false, err
	}

	return true, nil
}

// GetChangesSince возвращает записи пользователя новее since, исключая
// записи устройства excludeDeviceID. Упорядочены по timestamp.
func (s *Storage) GetChangesSince(ctx context.Context, userID string, since time.Time, excludeDeviceID string) ([]*models.ChangeRecord, error) {
	query := `
		SELECT id, user_id, device_id, entity_type, entity_id, change_type,
		       fields, new_value, checksum, timestamp, received_at
		FROM change_records
		WHERE user_id = ? AND timestamp > ? AND device_id != ?
		ORDER BY timestamp ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since.UnixNano(), excludeDeviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query changes since timestamp: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []*models.ChangeRecord

	for rows.Next() {
		record, err := scanChange(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// CountUserChanges возвращает количество хранимых записей пользователя
func (s *Storage) CountUserChanges(ctx context.Context, userID string) (int, error) {
	query := `SELECT COUNT(*) FROM change_records WHERE user_id = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count changes: %w", err)
	}

	return count, nil
}

// getEntityRecord возвращает хранимую запись сущности.
// Возвращает ErrChangeNotFound, если записи нет.
func (s *Storage) getEntityRecord(ctx context.Context, userID, entityType, entityID string) (*models.ChangeRecord, error) {
	query := `
		SELECT id, user_id, device_id, entity_type, entity_id, change_type,
		       fields, new_value, checksum, timestamp, received_at
		FROM change_records
		WHERE user_id = ? AND entity_type = ? AND entity_id = ?
	`

	record, err := scanChange(s.db.QueryRowContext(ctx, query, userID, entityType, entityID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrChangeNotFound
		}
		return nil, err
	}

	return record, nil
}

func (s *Storage) insertChange(ctx context.Context, record *models.ChangeRecord) error {
	fieldsJSON, newValueJSON, err := marshalChangePayload(record)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO change_records (
			id, user_id, device_id, entity_type, entity_id, change_type,
			fields, new_value, checksum, timestamp, received_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.DeviceID,
		record.EntityType,
		record.EntityID,
		string(record.ChangeType),
		fieldsJSON,
		newValueJSON,
		record.Checksum,
		record.Timestamp.UnixNano(),
		record.ReceivedAt.UnixNano(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert change: %w", err)
	}

	return nil
}

func (s *Storage) updateChange(ctx context.Context, record *models.ChangeRecord) error {
	fieldsJSON, newValueJSON, err := marshalChangePayload(record)
	if err != nil {
		return err
	}

	query := `
		UPDATE change_records
		SET id = ?, device_id = ?, change_type = ?, fields = ?,
		    new_value = ?, checksum = ?, timestamp = ?, received_at = ?
		WHERE user_id = ? AND entity_type = ? AND entity_id = ?
	`

	_, err = s.db.ExecContext(ctx, query,
		record.ID,
		record.DeviceID,
		string(record.ChangeType),
		fieldsJSON,
		newValueJSON,
		record.Checksum,
		record.Timestamp.UnixNano(),
		record.ReceivedAt.UnixNano(),
		record.UserID,
		record.EntityType,
		record.EntityID,
	)

	if err != nil {
		return fmt.Errorf("failed to update change: %w", err)
	}

	return nil
}

// mergeRecords строит новое хранимое состояние сущности из прежней
// записи и более нового входящего изменения. Update поверх create
// остается create с объединенным значением: устройство, выполняющее
// первый pull, должно получить полную сущность, а не набор полей.
func mergeRecords(existing, incoming *models.ChangeRecord) *models.ChangeRecord {
	merged := *incoming

	switch {
	case existing.ChangeType == models.ChangeCreate && incoming.ChangeType == models.ChangeUpdate:
		merged.ChangeType = models.ChangeCreate
		merged.NewValue = models.MergeValues(existing.NewValue, incoming.NewValue)
		merged.Fields = nil
		merged.Checksum = checksum.Sum(merged.NewValue)
	case existing.ChangeType == models.ChangeUpdate && incoming.ChangeType == models.ChangeUpdate:
		merged.NewValue = models.MergeValues(existing.NewValue, incoming.NewValue)
		merged.Fields = unionFields(existing.Fields, incoming.Fields)
		merged.Checksum = checksum.Sum(merged.NewValue)
	}

	return &merged
}

// unionFields объединяет списки полей без дубликатов, сохраняя порядок
func unionFields(existing, incoming []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(incoming))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, f := range existing {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	for _, f := range incoming {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}

func marshalChangePayload(record *models.ChangeRecord) (fields, newValue sql.NullString, err error) {
	if len(record.Fields) > 0 {
		data, merr := json.Marshal(record.Fields)
		if merr != nil {
			return fields, newValue, fmt.Errorf("failed to marshal fields: %w", merr)
		}
		fields = sql.NullString{String: string(data), Valid: true}
	}

	if record.NewValue != nil {
		data, merr := json.Marshal(record.NewValue)
		if merr != nil {
			return fields, newValue, fmt.Errorf("failed to marshal new value: %w", merr)
		}
		newValue = sql.NullString{String: string(data), Valid: true}
	}

	return fields, newValue, nil
}

// scanner покрывает *sql.Row и *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanChange(row scanner) (*models.ChangeRecord, error) {
	record := &models.ChangeRecord{}
	var changeType string
	var fieldsJSON, newValueJSON sql.NullString
	var timestamp, receivedAt int64

	err := row.Scan(
		&record.ID,
		&record.UserID,
		&record.DeviceID,
		&record.EntityType,
		&record.EntityID,
		&changeType,
		&fieldsJSON,
		&newValueJSON,
		&record.Checksum,
		&timestamp,
		&receivedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan change: %w", err)
	}

	record.ChangeType = models.ChangeType(changeType)
	record.Timestamp = time.Unix(0, timestamp).UTC()
	record.ReceivedAt = time.Unix(0, receivedAt).UTC()

	if fieldsJSON.Valid {
		if err := json.Unmarshal([]byte(fieldsJSON.String), &record.Fields); err != nil {
			return nil, fmt.Errorf("failed to unmarshal fields: %w", err)
		}
	}
	if newValueJSON.Valid {
		if err := json.Unmarshal([]byte(newValueJSON.String), &record.NewValue); err != nil {
			return nil, fmt.Errorf("failed to unmarshal new value: %w", err)
		}
	}

	return record, nil
}
