package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskmanager/domain/models"
	"taskmanager/domain/repositories"
)

const defaultQueryTimeout = 5 * time.Second

// sortColumns whitelists the sortable fields so request parameters never
// reach the ORDER BY clause verbatim.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"dueDate":   "due_date",
	"title":     "title",
	// priority is an enum stored as text; sort by rank, not alphabet
	"priority": "CASE priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 ELSE 0 END",
}

type TaskRepositoryImpl struct {
	db      *gorm.DB
	timeout time.Duration
}

func NewTaskRepository(db *gorm.DB, timeout time.Duration) repositories.TaskRepository {
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}
	return &TaskRepositoryImpl{db: db, timeout: timeout}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return translate(r.db.WithContext(ctx).Create(task).Error)
}

func (r *TaskRepositoryImpl) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var task models.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error
	if err != nil {
		return nil, translate(err)
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) List(ctx context.Context, userID uuid.UUID, filter repositories.TaskFilter) ([]*models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if filter.Status != "" && filter.Status != "all" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" && filter.Priority != "all" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Search != "" {
		// Literal-substring search: % and _ in the term are data, not
		// wildcards.
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where("LOWER(title) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern)
	}

	query = query.Order(orderClause(filter.SortBy, filter.SortOrder))

	var tasks []*models.Task
	if err := query.Find(&tasks).Error; err != nil {
		return nil, translate(err)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) Update(ctx context.Context, task *models.Task) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Save writes all columns, which is what the service layer expects
	// after merging the partial update into the loaded record.
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Select("*").Omit("id", "user_id", "created_at").
		Updates(task)
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, userID, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Task{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteByIDs removes the given tasks, constrained to the owner. IDs
// that do not exist or belong to someone else are silently excluded
// from the count.
func (r *TaskRepositoryImpl) DeleteByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", userID, ids).
		Delete(&models.Task{})
	if result.Error != nil {
		return 0, translate(result.Error)
	}
	return result.RowsAffected, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func orderClause(sortBy, sortOrder string) string {
	column, ok := sortColumns[sortBy]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}

	return column + " " + direction
}

// translate maps driver errors onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repositories.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repositories.ErrDuplicate
	case errors.Is(err, context.DeadlineExceeded):
		return repositories.ErrTimeout
	default:
		return err
	}
}
